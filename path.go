package linkpath

import (
	"strings"
)

// PathCmd is a path command.
type PathCmd int

// see PathCmd
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	ArcToCmd
)

func (cmd PathCmd) String() string {
	switch cmd {
	case MoveToCmd:
		return "M"
	case LineToCmd:
		return "L"
	case ArcToCmd:
		return "A"
	}
	return "?"
}

// cmdLen returns the number of coordinates stored for cmd.
func cmdLen(cmd PathCmd) int {
	switch cmd {
	case MoveToCmd, LineToCmd:
		return 2
	case ArcToCmd:
		return 7
	}
	panic("unknown path command")
}

// Path is a sequence of move, line and arc commands. Unlike general path types it keeps every command as given: a zero-radius arc stays an arc.
type Path struct {
	cmds []PathCmd
	d    []float64
}

// Segment is one drawing command of a path, from its start to its end position.
type Segment struct {
	Cmd        PathCmd
	Start, End Point

	// only set for ArcToCmd
	RX, RY, Rot  float64
	Large, Sweep bool
}

// Empty returns true if p has no drawing commands.
func (p *Path) Empty() bool {
	for _, cmd := range p.cmds {
		if cmd != MoveToCmd {
			return false
		}
	}
	return true
}

// Len returns the number of drawing commands, ie. all commands but MoveTo.
func (p *Path) Len() int {
	n := 0
	for _, cmd := range p.cmds {
		if cmd != MoveToCmd {
			n++
		}
	}
	return n
}

// Copy returns a copy of p.
func (p *Path) Copy() *Path {
	q := &Path{}
	q.cmds = append(q.cmds, p.cmds...)
	q.d = append(q.d, p.d...)
	return q
}

// Equals returns true if p and q have the same commands and their coordinates are equal with tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if len(p.cmds) != len(q.cmds) || len(p.d) != len(q.d) {
		return false
	}
	for i, cmd := range p.cmds {
		if cmd != q.cmds[i] {
			return false
		}
	}
	for i, f := range p.d {
		if !Equal(f, q.d[i]) {
			return false
		}
	}
	return true
}

// StartPos returns the start position of the path, which is (0,0) when it does not start with MoveTo.
func (p *Path) StartPos() Point {
	if 0 < len(p.cmds) && p.cmds[0] == MoveToCmd {
		return Point{p.d[0], p.d[1]}
	}
	return Point{}
}

// EndPos returns the current position of the path.
func (p *Path) EndPos() Point {
	if 1 < len(p.d) {
		return Point{p.d[len(p.d)-2], p.d[len(p.d)-1]}
	}
	return Point{}
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
	return p
}

// LineTo adds a straight line to (x,y).
func (p *Path) LineTo(x, y float64) *Path {
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
	return p
}

// ArcTo adds an elliptical arc to (x,y) with radii rx and ry, with rot the rotation in degrees of the x-axis of the ellipse. The large and sweep flags select one of the four possible arcs as in SVG.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *Path {
	p.cmds = append(p.cmds, ArcToCmd)
	p.d = append(p.d, rx, ry, rot, fromArcFlag(large), fromArcFlag(sweep), x, y)
	return p
}

func fromArcFlag(f bool) float64 {
	if f {
		return 1.0
	}
	return 0.0
}

func toArcFlag(f float64) bool {
	return f == 1.0
}

// Segments returns the drawing commands of the path.
func (p *Path) Segments() []Segment {
	segs := []Segment{}
	var start Point
	i := 0
	for _, cmd := range p.cmds {
		n := cmdLen(cmd)
		end := Point{p.d[i+n-2], p.d[i+n-1]}
		switch cmd {
		case LineToCmd:
			segs = append(segs, Segment{Cmd: cmd, Start: start, End: end})
		case ArcToCmd:
			segs = append(segs, Segment{
				Cmd:   cmd,
				Start: start,
				End:   end,
				RX:    p.d[i+0],
				RY:    p.d[i+1],
				Rot:   p.d[i+2],
				Large: toArcFlag(p.d[i+3]),
				Sweep: toArcFlag(p.d[i+4]),
			})
		}
		start = end
		i += n
	}
	return segs
}

// String returns the path description in the SVG path data format, eg. "M0 0A5 5 0 0 1 3 4".
func (p *Path) String() string {
	sb := strings.Builder{}
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			sb.WriteString("M")
			sb.WriteString(num(p.d[i+0]).String())
			sb.WriteString(" ")
			sb.WriteString(num(p.d[i+1]).String())
		case LineToCmd:
			sb.WriteString("L")
			sb.WriteString(num(p.d[i+0]).String())
			sb.WriteString(" ")
			sb.WriteString(num(p.d[i+1]).String())
		case ArcToCmd:
			sb.WriteString("A")
			sb.WriteString(num(p.d[i+0]).String())
			sb.WriteString(" ")
			sb.WriteString(num(p.d[i+1]).String())
			sb.WriteString(" ")
			sb.WriteString(num(p.d[i+2]).String())
			if toArcFlag(p.d[i+3]) {
				sb.WriteString(" 1")
			} else {
				sb.WriteString(" 0")
			}
			if toArcFlag(p.d[i+4]) {
				sb.WriteString(" 1 ")
			} else {
				sb.WriteString(" 0 ")
			}
			sb.WriteString(num(p.d[i+5]).String())
			sb.WriteString(" ")
			sb.WriteString(num(p.d[i+6]).String())
		}
		i += cmdLen(cmd)
	}
	return sb.String()
}
