package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/impacto/site/internal/carousel"
)

// Client message types. Each maps onto one carousel input.
const (
	TypeKey        = "key"
	TypeSwipe      = "swipe"
	TypeTouchStart = "touchstart"
	TypeTouchMove  = "touchmove"
	TypeTouchEnd   = "touchend"
	TypeDot        = "dot"
	TypePrev       = "prev"
	TypeNext       = "next"
	TypeHover      = "hover"
)

// Server message types.
const (
	TypeRender = "render"
)

var (
	ErrUnknownType = errors.New("unknown message type")
	ErrMissingKey  = errors.New("key message without a key")
)

// ClientMessage is what the browser sends for every interaction with a live
// carousel. Only the fields relevant to Type are read.
type ClientMessage struct {
	Type  string  `json:"type"`
	Key   string  `json:"key,omitempty"`
	Delta float64 `json:"delta,omitempty"`
	X     float64 `json:"x,omitempty"`
	Index int     `json:"index,omitempty"`
	Over  bool    `json:"over,omitempty"`
}

// ParseClientMessage decodes a single text frame.
func ParseClientMessage(data []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, fmt.Errorf("decode client message: %w", err)
	}
	return msg, nil
}

// Input converts the message into the carousel input it represents.
func (m ClientMessage) Input() (carousel.Input, error) {
	switch m.Type {
	case TypeKey:
		if m.Key == "" {
			return nil, ErrMissingKey
		}
		return carousel.Key{Name: m.Key}, nil
	case TypeSwipe:
		return carousel.Swipe{Delta: m.Delta}, nil
	case TypeTouchStart:
		return carousel.TouchStart{X: m.X}, nil
	case TypeTouchMove:
		return carousel.TouchMove{X: m.X}, nil
	case TypeTouchEnd:
		return carousel.TouchEnd{}, nil
	case TypeDot:
		return carousel.DotClick{Index: m.Index}, nil
	case TypePrev:
		return carousel.Arrow{Dir: carousel.Backward}, nil
	case TypeNext:
		return carousel.Arrow{Dir: carousel.Forward}, nil
	case TypeHover:
		return carousel.Hover{Over: m.Over}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, m.Type)
	}
}

// ServerMessage carries the re-rendered widget after the active slide
// changed. HTML replaces the element marked with data-carousel.
type ServerMessage struct {
	Type   string `json:"type"`
	Widget string `json:"widget"`
	Index  int    `json:"index"`
	Cause  string `json:"cause"`
	HTML   string `json:"html"`
}
