package game

// InputKind identifies a pointer event.
type InputKind int

const (
	// InputPress is a primary button press.
	InputPress InputKind = iota
	// InputMove is pointer motion.
	InputMove
	// InputRelease is a primary button release.
	InputRelease
)

// Input is one pointer event. HasPoint is false when the pointer has no
// position on the board, for example when it left the window.
type Input struct {
	Kind     InputKind
	Point    Point
	HasPoint bool
}

// Press builds a press event at p.
func Press(p Point) Input {
	return Input{Kind: InputPress, Point: p, HasPoint: true}
}

// Move builds a motion event at p.
func Move(p Point) Input {
	return Input{Kind: InputMove, Point: p, HasPoint: true}
}

// Release builds a release event at p.
func Release(p Point) Input {
	return Input{Kind: InputRelease, Point: p, HasPoint: true}
}
