package linkpath

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestLineStyleString(t *testing.T) {
	test.String(t, Straight.String(), "STRAIGHT")
	test.String(t, CurveSmooth.String(), "CURVE_SMOOTH")
	test.String(t, CurveFull.String(), "CURVE_FULL")
	test.String(t, LineStyle(42).String(), "Invalid(42)")
}

func TestParseLineStyle(t *testing.T) {
	var tts = []struct {
		s     string
		style LineStyle
	}{
		{"STRAIGHT", Straight},
		{"CURVE_SMOOTH", CurveSmooth},
		{"CURVE_FULL", CurveFull},
		{"", Straight},
		{"curve_smooth", Straight},
		{"CURVE_SMOTH", Straight},
		{" CURVE_FULL", Straight},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			test.T(t, ParseLineStyle(tt.s), tt.style)
		})
	}

	for _, style := range []LineStyle{Straight, CurveSmooth, CurveFull} {
		test.T(t, ParseLineStyle(style.String()), style)
	}
}

func TestLineStyleRadius(t *testing.T) {
	var tts = []struct {
		style          LineStyle
		x0, y0, x1, y1 float64
		r              float64
	}{
		{Straight, 0, 0, 3, 4, 0},
		{Straight, -50, 20, 1000, -3, 0},
		{CurveSmooth, 0, 0, 3, 4, 5},
		{CurveSmooth, 0, 0, 10, 0, 10},
		{CurveSmooth, 2, 7, 2, -3, 10},
		{CurveSmooth, 1, 1, 1, 1, 0},
		{CurveFull, 0, 0, 3, 4, 1},
		{CurveFull, 0, 0, 1000, 1000, 1},
		{CurveFull, 5, 5, 5, 5, 1},
		{LineStyle(-1), 0, 0, 3, 4, 0},
		{LineStyle(3), 0, 0, 3, 4, 0},
	}
	for _, tt := range tts {
		t.Run(tt.style.String(), func(t *testing.T) {
			test.Float(t, tt.style.Radius()(tt.x0, tt.y0, tt.x1, tt.y1), tt.r)
		})
	}
}
