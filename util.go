package linkpath

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Epsilon is the tolerance used when comparing coordinates.
const Epsilon = 1e-10

// Precision is the number of significant digits used when writing numbers. Zero writes the shortest representation that parses back to the same float64.
var Precision = 0

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// sign returns -1, 0 or +1 depending on the sign of f. Zero and NaN are returned unchanged.
func sign(f float64) float64 {
	if 0.0 < f {
		return 1.0
	} else if f < 0.0 {
		return -1.0
	}
	return f
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

////////////////////////////////////////////////////////////////

type num float64

func (f num) String() string {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return strconv.FormatFloat(float64(f), 'g', -1, 64)
	} else if f == 0.0 {
		return "0" // also for negative zero
	}

	if 0 < Precision {
		s := fmt.Sprintf("%.*g", Precision, float64(f))
		return string(minify.Number([]byte(s), Precision))
	}

	abs := math.Abs(float64(f))
	if abs < 1e-6 || 1e21 <= abs {
		return strconv.FormatFloat(float64(f), 'g', -1, 64)
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

type dec float64

func (f dec) String() string {
	if !isFinite(float64(f)) {
		return strconv.FormatFloat(float64(f), 'g', -1, 64)
	}
	prec := Precision
	if prec == 0 {
		prec = 5
	}
	s := fmt.Sprintf("%.*f", prec, float64(f))
	s = string(minify.Decimal([]byte(s), prec))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}

func toCSSColor(color color.RGBA) string {
	if color.A == 255 {
		buf := make([]byte, 7)
		buf[0] = '#'
		hex.Encode(buf[1:], []byte{color.R, color.G, color.B})
		return string(buf)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", color.R, color.G, color.B, float64(color.A)/255.0)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Pt returns the point (x,y).
func Pt(x, y float64) Point {
	return Point{x, y}
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// IsFinite returns true if neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Slope returns the slope between OP, ie. y/x.
func (p Point) Slope() float64 {
	return p.Y / p.X
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}
