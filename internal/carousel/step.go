package carousel

// SwipeThreshold is the horizontal drag distance, in pixels, a touch gesture
// must exceed to count as navigation.
const SwipeThreshold = 60.0

// Gesture holds the transient drag state between a TouchStart and its
// TouchEnd.
type Gesture struct {
	Active bool
	StartX float64
	Delta  float64
}

// State is the complete sequencer state. Index is always in [0, Count).
type State struct {
	Index   int
	Count   int
	Paused  bool
	Gesture Gesture
}

// Transition is the result of applying one input to a State.
type Transition struct {
	State State
	// Changed reports whether State.Index differs from the previous index.
	Changed bool
	// Rearm asks the owner to cancel the pending timer and arm a new one.
	Rearm bool
	// Cancel asks the owner to cancel the pending timer without rearming.
	Cancel bool
}

// Step applies in to st and reports the resulting state together with the
// timer effect the owner must perform. It never mutates st.
func Step(v Variant, st State, in Input) Transition {
	if st.Count <= 0 {
		return Transition{State: st}
	}

	switch in := in.(type) {
	case Key:
		switch in.Name {
		case KeyArrowRight:
			return move(st, next(st))
		case KeyArrowLeft:
			return move(st, prev(st))
		}

	case Arrow:
		if in.Dir == Backward {
			return move(st, prev(st))
		}
		return move(st, next(st))

	case DotClick:
		if in.Index < 0 || in.Index >= st.Count {
			return Transition{State: st}
		}
		return move(st, in.Index)

	case Swipe:
		if !v.Swipe {
			return Transition{State: st}
		}
		return swipe(st, in.Delta)

	case TouchStart:
		if !v.Swipe {
			return Transition{State: st}
		}
		st.Gesture = Gesture{Active: true, StartX: in.X}
		return Transition{State: st}

	case TouchMove:
		if !st.Gesture.Active {
			return Transition{State: st}
		}
		st.Gesture.Delta = in.X - st.Gesture.StartX
		return Transition{State: st}

	case TouchEnd:
		if !st.Gesture.Active {
			return Transition{State: st}
		}
		delta := st.Gesture.Delta
		st.Gesture = Gesture{}
		return swipe(st, delta)

	case Hover:
		if !v.PauseOnHover || st.Paused == in.Over {
			return Transition{State: st}
		}
		st.Paused = in.Over
		if st.Paused {
			return Transition{State: st, Cancel: true}
		}
		return Transition{State: st, Rearm: st.Count > 1}

	case TimerFired:
		if st.Count <= 1 || st.Paused {
			return Transition{State: st}
		}
		return move(st, next(st))
	}

	return Transition{State: st}
}

func swipe(st State, delta float64) Transition {
	switch {
	case delta < -SwipeThreshold:
		return move(st, next(st))
	case delta > SwipeThreshold:
		return move(st, prev(st))
	}
	return Transition{State: st}
}

func next(st State) int {
	return (st.Index + 1) % st.Count
}

func prev(st State) int {
	return (st.Index - 1 + st.Count) % st.Count
}

// move sets the index and, when it actually changed, asks for the timer to be
// rearmed so the new slide stays visible for a full interval.
func move(st State, to int) Transition {
	if to == st.Index {
		return Transition{State: st}
	}
	st.Index = to
	return Transition{
		State:   st,
		Changed: true,
		Rearm:   st.Count > 1 && !st.Paused,
		Cancel:  st.Paused,
	}
}
