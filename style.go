package linkpath

import (
	"math"
	"strconv"
)

// LineStyle is the visual style of a link and determines the arc radius of each of its segments.
type LineStyle int

// see LineStyle
const (
	Straight LineStyle = iota
	CurveSmooth
	CurveFull
)

func (style LineStyle) String() string {
	switch style {
	case Straight:
		return "STRAIGHT"
	case CurveSmooth:
		return "CURVE_SMOOTH"
	case CurveFull:
		return "CURVE_FULL"
	}
	return "Invalid(" + strconv.Itoa(int(style)) + ")"
}

// ParseLineStyle returns the line style for its identifier STRAIGHT, CURVE_SMOOTH or CURVE_FULL. Matching is exact and case-sensitive, any other string returns Straight.
func ParseLineStyle(s string) LineStyle {
	switch s {
	case "CURVE_SMOOTH":
		return CurveSmooth
	case "CURVE_FULL":
		return CurveFull
	}
	return Straight
}

// RadiusFunc returns the arc radius of the segment from (x0,y0) to (x1,y1).
type RadiusFunc func(x0, y0, x1, y1 float64) float64

// Radius returns the radius function for the line style. Unknown styles use the radius function of Straight.
func (style LineStyle) Radius() RadiusFunc {
	switch style {
	case CurveSmooth:
		return smoothRadius
	case CurveFull:
		return fullRadius
	default:
		return straightRadius
	}
}

// straightRadius degenerates every arc into a straight line.
func straightRadius(_, _, _, _ float64) float64 {
	return 0.0
}

// smoothRadius bows every segment proportionally to its length.
func smoothRadius(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

// fullRadius is smaller than half of any practical segment, the renderer scales it up to a half circle.
func fullRadius(_, _, _, _ float64) float64 {
	return 1.0
}
