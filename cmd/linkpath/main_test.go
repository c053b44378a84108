package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/linkpath"
	"github.com/tdewolff/test"
)

func capture(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	stdout = buf
	t.Cleanup(func() {
		stdout = os.Stdout
		linkpath.Precision = 0
	})
	return buf
}

func TestParsePoint(t *testing.T) {
	var tts = []struct {
		s  string
		pt linkpath.Point
	}{
		{"0,0", linkpath.Pt(0, 0)},
		{" -3.5,4 ", linkpath.Pt(-3.5, 4)},
		{"1e2,.5", linkpath.Pt(100, 0.5)},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			pt, err := parsePoint(tt.s)
			test.Error(t, err)
			test.T(t, pt, tt.pt)
		})
	}

	for _, s := range []string{"", "1", "1,", ",1", "1;2", "1,2,3", "a,b"} {
		_, err := parsePoint(s)
		test.That(t, err != nil, "must give error for", s)
	}
}

func TestParsePoints(t *testing.T) {
	pts, err := parsePoints("")
	test.Error(t, err)
	test.T(t, len(pts), 0)

	pts, err = parsePoints("1,2  3,4")
	test.Error(t, err)
	test.T(t, pts, []linkpath.Point{{X: 1, Y: 2}, {X: 3, Y: 4}})

	_, err = parsePoints("1,2 3")
	test.That(t, err != nil)
}

func TestPathCmd(t *testing.T) {
	buf := capture(t)
	cmd := &PathCmd{Source: "0,0", Target: "10,0", Style: "STRAIGHT", Width: 4, Height: 4}
	test.Error(t, cmd.Run())
	test.String(t, buf.String(), "M0 0A0 0 0 0 1 16 0\n")

	buf.Reset()
	cmd = &PathCmd{Source: "0,0", Target: "20,10", Style: "CURVE_FULL", BreakPoints: "10,10", Width: 4, Height: 2}
	test.Error(t, cmd.Run())
	test.String(t, buf.String(), "M0 0A1 1 0 0 1 10 10A1 1 0 0 1 26 10\n")
}

func TestPathCmdStrict(t *testing.T) {
	capture(t)
	cmd := &PathCmd{Source: "0,0", Target: "10,0", Width: -4, Height: 4, Strict: true}
	test.That(t, cmd.Run() != nil)

	cmd = &PathCmd{Source: "0,0", Target: "x"}
	test.That(t, cmd.Run() != nil)
}

func TestSVGCmd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "links.yaml")
	test.Error(t, os.WriteFile(input, []byte("width: 50\nheight: 20\nlinks:\n  - source: [0, 0]\n    target: [10, 0]\n    width: 4\n    height: 4\n"), 0644))

	output := filepath.Join(dir, "links.svg")
	cmd := &SVGCmd{StrokeWidth: 1, NoArrows: true, Output: output, Input: input}
	test.Error(t, cmd.Run())

	b, err := os.ReadFile(output)
	test.Error(t, err)
	test.That(t, strings.Contains(string(b), `<path d="M0 0A0 0 0 0 1 16 0"`), string(b))
	test.That(t, !strings.Contains(string(b), "marker-end"), string(b))

	buf := capture(t)
	cmd = &SVGCmd{StrokeWidth: 1, Input: input}
	test.Error(t, cmd.Run())
	test.That(t, strings.HasPrefix(buf.String(), "<svg "))

	cmd = &SVGCmd{Input: filepath.Join(dir, "missing.yaml")}
	test.That(t, cmd.Run() != nil)
}

func TestInspectCmd(t *testing.T) {
	buf := capture(t)
	cmd := &InspectCmd{Path: "M0 0A1 1 0 0 1 10 10A1 1 0 0 1 26 10"}
	test.Error(t, cmd.Run())
	s := buf.String()
	test.That(t, strings.HasPrefix(s, "segments: 2\n"), s)
	test.That(t, strings.HasSuffix(s, "end: [26; 10]\n"), s)

	cmd = &InspectCmd{Path: "M0 0Q1 1 2 2"}
	test.That(t, cmd.Run() != nil)
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, closer := newLogger(buf, LogOptions{Level: "debug"})
	logger.Debug("hello", slog.Int("n", 1))
	test.Error(t, closer.Close())
	test.That(t, strings.Contains(buf.String(), "msg=hello"), buf.String())

	buf.Reset()
	logger, _ = newLogger(buf, LogOptions{})
	logger.Info("quiet")
	test.String(t, buf.String(), "")

	name := filepath.Join(t.TempDir(), "linkpath.log")
	logger, closer = newLogger(buf, LogOptions{Level: "info", File: name})
	logger.Info("both")
	test.Error(t, closer.Close())
	test.That(t, strings.Contains(buf.String(), "msg=both"), buf.String())
	b, err := os.ReadFile(name)
	test.Error(t, err)
	test.That(t, strings.Contains(string(b), `"msg":"both"`), string(b))
}
