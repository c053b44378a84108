package linkpath

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// parseNonFinite parses the NaN and infinity tokens that String writes for non-finite numbers.
func parseNonFinite(path []byte) (float64, int) {
	for _, tok := range []struct {
		s string
		f float64
	}{
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
		{"Inf", math.Inf(1)},
	} {
		if len(tok.s) <= len(path) && string(path[:len(tok.s)]) == tok.s {
			return tok.f, len(tok.s)
		}
	}
	return 0.0, 0
}

func parseNum(path []byte) (float64, int, error) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		f, n = parseNonFinite(path[i:])
		if n == 0 {
			return 0.0, 0, fmt.Errorf("bad number")
		}
	}
	return f, i + n, nil
}

func parseNums(path []byte, fs ...*float64) (int, error) {
	i := 0
	for _, f := range fs {
		var n int
		var err error
		if *f, n, err = parseNum(path[i:]); err != nil {
			return i, err
		}
		i += n
	}
	return i, nil
}

func isPathCmd(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'A', 'a':
		return true
	}
	return false
}

// ParseSVGPath parses a path description with the M, L and A commands (absolute and relative) as written by Path.String.
func ParseSVGPath(s string) (*Path, error) {
	path := []byte(s)
	p := &Path{}

	var prevCmd byte
	i := skipCommaWhitespace(path)
	for i < len(path) {
		cmd := prevCmd
		if isPathCmd(path[i]) {
			cmd = path[i]
			i++
		} else if 'A' <= path[i] && path[i] != 'N' && path[i] != 'I' {
			return nil, fmt.Errorf("unsupported path command '%c' at position %d", path[i], i)
		} else if cmd == 0 {
			return nil, fmt.Errorf("path must start with a command")
		}

		pos := p.EndPos()
		var n int
		var err error
		switch cmd {
		case 'M', 'm':
			var x, y float64
			if n, err = parseNums(path[i:], &x, &y); err != nil {
				break
			}
			if cmd == 'm' {
				x += pos.X
				y += pos.Y
			}
			p.MoveTo(x, y)
		case 'L', 'l':
			var x, y float64
			if n, err = parseNums(path[i:], &x, &y); err != nil {
				break
			}
			if cmd == 'l' {
				x += pos.X
				y += pos.Y
			}
			p.LineTo(x, y)
		case 'A', 'a':
			var rx, ry, rot, large, sweep, x, y float64
			if n, err = parseNums(path[i:], &rx, &ry, &rot, &large, &sweep, &x, &y); err != nil {
				break
			}
			if cmd == 'a' {
				x += pos.X
				y += pos.Y
			}
			p.ArcTo(rx, ry, rot, math.Abs(large-1.0) < Epsilon, math.Abs(sweep-1.0) < Epsilon, x, y)
		}
		if err != nil {
			return nil, fmt.Errorf("%v in '%c' command at position %d", err, cmd, i+n)
		}
		i += n
		i += skipCommaWhitespace(path[i:])

		// implicit commands after MoveTo are LineTo
		if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
		prevCmd = cmd
	}
	return p, nil
}
