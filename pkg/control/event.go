package control

// Event is an input event queued by a presenter.
type Event interface {
	event()
}

// KeyEvent is a key press named by its binding symbol, such as "a",
// "space" or "up".
type KeyEvent struct {
	Symbol string
}

// PointerKind distinguishes pointer button transitions from motion.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is a primary-button press, release or motion in cell
// coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// WheelEvent is a scroll; positive Delta zooms in.
type WheelEvent struct {
	Delta int
}

// QuitEvent asks the frame loop to stop.
type QuitEvent struct{}

func (KeyEvent) event()     {}
func (PointerEvent) event() {}
func (WheelEvent) event()   {}
func (QuitEvent) event()    {}
