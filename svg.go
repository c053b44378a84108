package linkpath

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// SVGOptions are the options for WriteSVG.
type SVGOptions struct {
	Stroke      color.RGBA
	StrokeWidth float64
	Targets     bool // draw the target rectangles
	Arrows      bool // draw an arrowhead at the end of each link
}

// DefaultSVGOptions are the default options for WriteSVG.
var DefaultSVGOptions = SVGOptions{
	Stroke:      color.RGBA{0, 0, 0, 255},
	StrokeWidth: 1.0,
	Targets:     true,
	Arrows:      true,
}

// WriteSVG writes an SVG document of width by height with a path element for every link. It is meant for previewing links, since the path descriptions are the actual output of the package.
func WriteSVG(w io.Writer, width, height float64, links []Link, opts *SVGOptions) error {
	if opts == nil {
		defaultOptions := DefaultSVGOptions
		opts = &defaultOptions
	}
	stroke := toCSSColor(opts.Stroke)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(width), dec(height), dec(width), dec(height))
	if opts.Arrows {
		fmt.Fprintf(bw, `<defs><marker id="arrow" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="%v" markerHeight="%v" orient="auto-start-reverse"><path d="M0 0L10 5L0 10z" fill="%s"/></marker></defs>`, dec(Threshold), dec(Threshold), stroke)
	}
	if opts.Targets {
		for _, l := range links {
			x := l.Target.X - l.TargetWidth/2.0
			y := l.Target.Y - l.TargetHeight/2.0
			fmt.Fprintf(bw, `<rect x="%v" y="%v" width="%v" height="%v" fill="none" stroke="%s" stroke-width="%v"/>`, dec(x), dec(y), dec(l.TargetWidth), dec(l.TargetHeight), stroke, dec(opts.StrokeWidth))
		}
	}
	for _, l := range links {
		fmt.Fprintf(bw, `<path d="%v" fill="none" stroke="%s" stroke-width="%v"`, l.Path(), stroke, dec(opts.StrokeWidth))
		if opts.Arrows {
			bw.WriteString(` marker-end="url(#arrow)"`)
		}
		bw.WriteString(`/>`)
	}
	bw.WriteString("</svg>")
	return bw.Flush()
}
