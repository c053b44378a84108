package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/linkpath"
	"github.com/tdewolff/linkpath/linkset"
	"github.com/tdewolff/parse/v2/strconv"
)

type PathCmd struct {
	Source      string  `short:"s" default:"0,0" desc:"Source point x,y"`
	Target      string  `short:"t" default:"0,0" desc:"Target point x,y"`
	Style       string  `default:"STRAIGHT" desc:"Line style: STRAIGHT, CURVE_SMOOTH or CURVE_FULL"`
	BreakPoints string  `short:"b" desc:"Break-points as space separated x,y pairs"`
	Width       float64 `short:"W" desc:"Target width"`
	Height      float64 `short:"H" desc:"Target height"`
	Precision   int     `short:"p" desc:"Number of significant digits, 0 for exact"`
	Strict      bool    `desc:"Fail on non-finite coordinates and negative extents"`
}

type SVGCmd struct {
	Width       float64 `short:"W" desc:"Canvas width, overrides the link set"`
	Height      float64 `short:"H" desc:"Canvas height, overrides the link set"`
	StrokeWidth float64 `default:"1" desc:"Stroke width"`
	NoTargets   bool    `desc:"Do not draw target rectangles"`
	NoArrows    bool    `desc:"Do not draw arrowheads"`
	Precision   int     `short:"p" desc:"Number of significant digits, 0 for exact"`
	Strict      bool    `desc:"Fail on non-finite coordinates and negative extents"`
	Output      string  `short:"o" desc:"Output file"`
	Input       string  `index:"0" desc:"Link set file in YAML or JSON"`
}

type InspectCmd struct {
	Path string `index:"0" desc:"Path description"`
}

var stdout io.Writer = os.Stdout

func main() {
	defer initLogger().Close()

	root := argp.NewCmd(&PathCmd{}, "Path descriptions of diagram links")
	root.AddCmd(&SVGCmd{}, "svg", "Render a link set to SVG")
	root.AddCmd(&InspectCmd{}, "inspect", "Show the segments of a path description")
	root.Parse()
	root.PrintHelp()
}

func (cmd *PathCmd) Run() error {
	source, err := parsePoint(cmd.Source)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	target, err := parsePoint(cmd.Target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	breakPoints, err := parsePoints(cmd.BreakPoints)
	if err != nil {
		return fmt.Errorf("break-points: %w", err)
	}

	l := linkpath.Link{
		Source:       source,
		Target:       target,
		Style:        linkpath.ParseLineStyle(cmd.Style),
		BreakPoints:  breakPoints,
		TargetWidth:  cmd.Width,
		TargetHeight: cmd.Height,
	}
	if cmd.Strict {
		if err := l.Validate(); err != nil {
			return err
		}
	}

	linkpath.Precision = cmd.Precision
	_, err = fmt.Fprintln(stdout, l.String())
	return err
}

func (cmd *SVGCmd) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	set, err := linkset.LoadFile(cmd.Input)
	if err != nil {
		return err
	}
	if cmd.Strict {
		if err := set.Validate(); err != nil {
			return err
		}
	}

	width, height := set.Width, set.Height
	if cmd.Width != 0.0 {
		width = cmd.Width
	}
	if cmd.Height != 0.0 {
		height = cmd.Height
	}

	opts := linkpath.DefaultSVGOptions
	opts.StrokeWidth = cmd.StrokeWidth
	opts.Targets = !cmd.NoTargets
	opts.Arrows = !cmd.NoArrows

	w := stdout
	if cmd.Output != "" && cmd.Output != "-" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	linkpath.Precision = cmd.Precision
	return linkpath.WriteSVG(w, width, height, set.Links(), &opts)
}

func (cmd *InspectCmd) Run() error {
	if cmd.Path == "" {
		return argp.ShowUsage
	}

	p, err := linkpath.ParseSVGPath(cmd.Path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	fmt.Fprintf(w, "segments: %d\n", p.Len())
	fmt.Fprintf(w, "start: %v\n", p.StartPos())
	for i, seg := range p.Segments() {
		switch seg.Cmd {
		case linkpath.ArcToCmd:
			fmt.Fprintf(w, "%d: %v %v -> %v radius %g,%g large=%v sweep=%v\n", i, seg.Cmd, seg.Start, seg.End, seg.RX, seg.RY, seg.Large, seg.Sweep)
		default:
			fmt.Fprintf(w, "%d: %v %v -> %v\n", i, seg.Cmd, seg.Start, seg.End)
		}
	}
	fmt.Fprintf(w, "end: %v\n", p.EndPos())
	return w.Flush()
}

// parsePoint parses a point in the form x,y.
func parsePoint(s string) (linkpath.Point, error) {
	b := []byte(strings.TrimSpace(s))
	x, n := strconv.ParseFloat(b)
	if n == 0 || len(b) <= n || b[n] != ',' {
		return linkpath.Point{}, fmt.Errorf("bad point '%s', expected x,y", s)
	}
	y, m := strconv.ParseFloat(b[n+1:])
	if m == 0 || n+1+m != len(b) {
		return linkpath.Point{}, fmt.Errorf("bad point '%s', expected x,y", s)
	}
	return linkpath.Pt(x, y), nil
}

// parsePoints parses space separated points.
func parsePoints(s string) ([]linkpath.Point, error) {
	var pts []linkpath.Point
	for _, f := range strings.Fields(s) {
		pt, err := parsePoint(f)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}
