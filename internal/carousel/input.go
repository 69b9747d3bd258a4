package carousel

// Input is one event fed into a sequencer. Keyboard, pointer, touch and
// timer events are all expressed as inputs and handled by Step.
type Input interface {
	isInput()
}

// Key names recognised by the sequencer. Any other key is ignored.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

// Direction of an arrow button press.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Key is a keyboard press while the widget has focus.
type Key struct {
	Name string
}

// Swipe is a completed horizontal drag with its accumulated delta in pixels.
// Negative deltas are leftward.
type Swipe struct {
	Delta float64
}

// TouchStart begins a drag at horizontal position X.
type TouchStart struct {
	X float64
}

// TouchMove updates the drag with the current horizontal position X.
type TouchMove struct {
	X float64
}

// TouchEnd finishes the drag started by TouchStart.
type TouchEnd struct{}

// DotClick selects a slide directly through its index dot.
type DotClick struct {
	Index int
}

// Arrow is a click on the previous or next control.
type Arrow struct {
	Dir Direction
}

// Hover reports the pointer entering (Over) or leaving the widget.
type Hover struct {
	Over bool
}

// TimerFired is delivered by the auto-advance timer armed with generation Gen.
type TimerFired struct {
	Gen uint64
}

func (Key) isInput()        {}
func (Swipe) isInput()      {}
func (TouchStart) isInput() {}
func (TouchMove) isInput()  {}
func (TouchEnd) isInput()   {}
func (DotClick) isInput()   {}
func (Arrow) isInput()      {}
func (Hover) isInput()      {}
func (TimerFired) isInput() {}

// Cause names the kind of input that produced a change, for logging and
// observers.
func Cause(in Input) string {
	switch in.(type) {
	case Key:
		return "key"
	case Swipe, TouchStart, TouchMove, TouchEnd:
		return "swipe"
	case DotClick:
		return "dot"
	case Arrow:
		return "arrow"
	case Hover:
		return "hover"
	case TimerFired:
		return "timer"
	default:
		return "unknown"
	}
}
