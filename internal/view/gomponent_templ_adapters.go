package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// gomponentComponent lets a gomponents.Node be used where a templ.Component
// is expected.
type gomponentComponent struct {
	node gomponents.Node
}

func (a gomponentComponent) Render(_ context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents.Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return gomponentComponent{node: node}
}

// templNode lets a templ.Component be embedded in a gomponents tree.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (a templNode) Render(w io.Writer) error {
	return a.component.Render(a.ctx, w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents.Node.
// gomponents does not pass a context, so the component renders with
// context.Background().
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return AdaptTemplToGomponentCtx(context.Background(), component)
}

// AdaptTemplToGomponentCtx is AdaptTemplToGomponent with an explicit context.
func AdaptTemplToGomponentCtx(ctx context.Context, component templ.Component) gomponents.Node {
	return templNode{ctx: ctx, component: component}
}
