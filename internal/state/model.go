package state

type Point struct {
	X, Y  float32
	Style StyleState
}

// StyleState is the (width, color) pair a stroke is drawn with. Both values
// are kept as the strings the controls produce; the renderer parses them.
type StyleState struct {
	LineWidth string
	Color     string
}

// Segment is one line piece between two consecutive samples of a stroke.
type Segment struct {
	From   Point
	To     Point
	Stroke uint64 // sequence number of the stroke within its capture
}

// Style returns the style shared by both ends of the segment.
func (s Segment) Style() StyleState { return s.From.Style }

type Phase int

const (
	Idle Phase = iota
	Drawing
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	}
	return "unknown"
}
