// Package linkpath computes the path descriptions of links between nodes in a diagram.
package linkpath

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Threshold is the distance by which the end of a link is moved past the boundary of its target, leaving room for the stroke and arrowhead.
const Threshold = 8.0

var (
	ErrNonFinite      = errors.New("coordinate is not finite")
	ErrNegativeExtent = errors.New("target extent is negative")
)

// Link is a connection between a source and a target point that passes through its break-points in order. The target is the center of a rectangle of TargetWidth by TargetHeight at which the link stops.
type Link struct {
	Source, Target Point
	Style          LineStyle
	BreakPoints    []Point

	TargetWidth, TargetHeight float64
}

// BuildLinkPathDefinition returns the path description of a link from source through the break-points to target. See Link.Path.
func BuildLinkPathDefinition(source, target Point, style LineStyle, breakPoints []Point, targetWidth, targetHeight float64) string {
	return Link{
		Source:       source,
		Target:       target,
		Style:        style,
		BreakPoints:  breakPoints,
		TargetWidth:  targetWidth,
		TargetHeight: targetHeight,
	}.String()
}

// Path returns the path of the link: a MoveTo to the source followed by one arc per break-point and one for the target. The arc radius is given by the line style and the last arc ends at the boundary of the target rectangle. Invalid input is not rejected, non-finite results end up in the path as is.
func (l Link) Path() *Path {
	radius := l.Style.Radius()

	p := &Path{}
	p.MoveTo(l.Source.X, l.Source.Y)

	q := l.Source
	for i, n := 0, len(l.BreakPoints); i <= n; i++ {
		pt := l.Target
		if i < n {
			pt = l.BreakPoints[i]
		}

		r := radius(q.X, q.Y, pt.X, pt.Y)
		end := pt
		if i == n {
			end = clipEnd(q, pt, l.TargetWidth, l.TargetHeight)
			if !end.IsFinite() {
				Logger().Debug("link end is not finite",
					slog.String("from", q.String()),
					slog.String("to", pt.String()),
					slog.Float64("width", l.TargetWidth),
					slog.Float64("height", l.TargetHeight))
			}
		}
		p.ArcTo(r, r, 0.0, false, true, end.X, end.Y)
		q = pt
	}
	return p
}

// String returns the path description of the link.
func (l Link) String() string {
	return l.Path().String()
}

// Validate returns an error if any coordinate is NaN or infinite, or if the target extent is negative. Path does not call Validate.
func (l Link) Validate() error {
	if !l.Source.IsFinite() {
		return fmt.Errorf("source %v: %w", l.Source, ErrNonFinite)
	} else if !l.Target.IsFinite() {
		return fmt.Errorf("target %v: %w", l.Target, ErrNonFinite)
	}
	for i, pt := range l.BreakPoints {
		if !pt.IsFinite() {
			return fmt.Errorf("break-point %d %v: %w", i, pt, ErrNonFinite)
		}
	}
	if !isFinite(l.TargetWidth) || !isFinite(l.TargetHeight) {
		return fmt.Errorf("target extent %gx%g: %w", l.TargetWidth, l.TargetHeight, ErrNonFinite)
	} else if l.TargetWidth < 0.0 || l.TargetHeight < 0.0 {
		return fmt.Errorf("target extent %gx%g: %w", l.TargetWidth, l.TargetHeight, ErrNegativeExtent)
	}
	return nil
}

// clipEnd moves the end point p of the segment qp back along the segment onto the boundary of the w by h rectangle centered at p, and then Threshold further along the crossed axis. Vertical or horizontal segments may divide by zero, the result is not corrected.
func clipEnd(q, p Point, w, h float64) Point {
	dx, dy := p.X-q.X, p.Y-q.Y
	alpha := math.Atan(dy / dx)
	beta := math.Atan(h / w)
	if -beta < alpha && alpha <= beta {
		// left or right edge
		s := sign(dx)
		f := (w / 2.0) / dx
		return Point{
			p.X - s*dx*f + s*Threshold,
			p.Y - s*dy*f,
		}
	}

	// top or bottom edge
	s := sign(dy)
	f := (h / 2.0) / dy
	return Point{
		p.X - s*dx*f,
		p.Y - s*dy*f + s*Threshold,
	}
}
