// Package style holds small text presentation helpers.
package style

// Position selects where TextEllipsis places the ellipsis.
type Position string

const (
	// PositionStart keeps the tail of the text.
	PositionStart Position = "start"
	// PositionMiddle keeps both the head and the tail.
	PositionMiddle Position = "middle"
	// PositionEnd keeps the head of the text. It is the default.
	PositionEnd Position = "end"
)

// Ellipsis is the marker inserted where text was cut.
const Ellipsis = "..."

// TextEllipsis keeps length runes of text at the side(s) chosen by
// position and marks the cut with Ellipsis. The marker is added even
// when text is shorter than length; empty text yields "".
//
//	TextEllipsis("Hello World", 5, PositionStart)  // "...World"
//	TextEllipsis("Hello World", 5, PositionMiddle) // "Hello...World"
//	TextEllipsis("Hello World", 5, PositionEnd)    // "Hello..."
func TextEllipsis(text string, length int, position Position) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	if length < 0 {
		length = 0
	}
	if length > len(runes) {
		length = len(runes)
	}
	head := string(runes[:length])
	tail := string(runes[len(runes)-length:])

	switch position {
	case PositionStart:
		return Ellipsis + tail
	case PositionMiddle:
		return head + Ellipsis + tail
	default:
		return head + Ellipsis
	}
}
