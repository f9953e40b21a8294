package preview

// Fixed chrome around the text, in pixels
const (
	PaddingTop    = 10
	PaddingBottom = 10
	PaddingSide   = 12
	Border        = 2

	MinLineHeight = 14
	LineFactor    = 1.7
)

// Metrics configures overlay sizing.
type Metrics struct {
	Width     int
	MinHeight int
	MaxHeight int // 0 derives the cap from MaxLines
	MaxLines  int
	FontSize  int
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height int
}

// Point is a screen position in pixels.
type Point struct {
	X, Y int
}

// Rect is a screen rectangle; Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns the horizontal extent.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() int { return r.Bottom - r.Top }

// LineHeight estimates one text line from the font size.
func (m Metrics) LineHeight() int {
	h := int(float64(m.FontSize) * LineFactor)
	if h < MinLineHeight {
		h = MinLineHeight
	}
	return h
}

// Measure returns the overlay size for the number of lines shown. The height
// grows with the lines, is floored at MinHeight and capped at the max height;
// the cap wins if the two conflict.
func Measure(lines int, m Metrics) Size {
	lineH := m.LineHeight()
	chrome := PaddingTop + PaddingBottom + Border

	maxH := m.MaxHeight
	if maxH == 0 {
		maxLines := m.MaxLines
		if maxLines < 1 {
			maxLines = 1
		}
		maxH = chrome + maxLines*lineH
	}

	h := chrome + lines*lineH
	if h < m.MinHeight {
		h = m.MinHeight
	}
	if h > maxH {
		h = maxH
	}
	return Size{Width: m.Width, Height: h}
}
