package main

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/snapmark"
	"github.com/gogpu/snapmark/pixmap"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errArgs           = errors.New("bad arguments")
)

// runScript applies a line-oriented annotation script to s. Blank lines
// and lines starting with '#' are skipped.
//
//	color ff0000ff
//	thickness 3
//	fill on
//	rect 10 10 120 80
//	stroke 5 5 20 9 40 30
//	erase 5 5 40 30
//	crop 0 0 200 100
func runScript(s *snapmark.Session, r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if err := apply(s, fields[0], fields[1:]); err != nil {
			return fmt.Errorf("line %d: %s: %w", n, fields[0], err)
		}
	}
	return sc.Err()
}

func apply(s *snapmark.Session, cmd string, args []string) error {
	switch cmd {
	case "color":
		if len(args) != 1 {
			return errArgs
		}
		c, err := pixmap.Hex(args[0])
		if err != nil {
			return err
		}
		s.SetTool(snapmark.SetColor(c))
	case "thickness":
		if len(args) != 1 {
			return errArgs
		}
		t, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		s.SetTool(snapmark.SetThickness(t))
	case "fill":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return errArgs
		}
		s.SetTool(snapmark.SetFill(args[0] == "on"))
	case "line", "rect", "circle":
		pts, err := points(args, 2, 2)
		if err != nil {
			return err
		}
		shape := map[string]snapmark.Shape{
			"line":   snapmark.Line,
			"rect":   snapmark.Rectangle,
			"circle": snapmark.Circle,
		}[cmd]
		s.SetTool(snapmark.SelectShape(shape))
		_, err = s.Draw(shape, pts[0], pts[1])
		return err
	case "stroke", "erase":
		pts, err := points(args, 2, -1)
		if err != nil {
			return err
		}
		shape := snapmark.Freehand
		if cmd == "erase" {
			shape = snapmark.Eraser
		}
		s.SetTool(snapmark.SelectShape(shape))
		drag(s, pts)
	case "crop":
		pts, err := points(args, 2, 2)
		if err != nil {
			return err
		}
		s.SetTool(snapmark.SelectShape(snapmark.Cut))
		if _, ok := s.Select(pts[0], pts[1]); !ok {
			return fmt.Errorf("%w: empty crop area", errArgs)
		}
		return s.Crop()
	default:
		return errUnknownCommand
	}
	return nil
}

// drag replays a pointer path with the primary button held.
func drag(s *snapmark.Session, pts []image.Point) {
	ptr := func(p image.Point, held bool) snapmark.Pointer {
		return snapmark.Pointer{X: float64(p.X), Y: float64(p.Y), Primary: held}
	}
	s.PointerDown(ptr(pts[0], true))
	for _, p := range pts {
		s.PointerMove(ptr(p, true))
	}
	_, _ = s.PointerUp(ptr(pts[len(pts)-1], false))
}

// points parses pairs of integer coordinates. It requires at least lo
// points and at most hi (hi < 0 means no limit).
func points(args []string, lo, hi int) ([]image.Point, error) {
	if len(args)%2 != 0 || len(args)/2 < lo || (hi >= 0 && len(args)/2 > hi) {
		return nil, errArgs
	}
	pts := make([]image.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, err
		}
		y, err := strconv.Atoi(args[i+1])
		if err != nil {
			return nil, err
		}
		pts = append(pts, image.Pt(x, y))
	}
	return pts, nil
}
