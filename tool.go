package snapmark

import (
	"fmt"
	"strings"

	"github.com/gogpu/snapmark/pixmap"
)

// Shape is the annotation tool selected in the editor.
type Shape uint8

// Annotation tools.
const (
	// None disables pointer editing.
	None Shape = iota
	// Line draws a straight segment between press and release.
	Line
	// Circle draws the circle inscribed in the dragged box.
	Circle
	// Rectangle draws the dragged box.
	Rectangle
	// Freehand paints along the pointer path while the button is held.
	Freehand
	// Eraser restores original pixels along the pointer path.
	Eraser
	// Cut selects a crop area.
	Cut
)

var shapeNames = [...]string{
	None:      "none",
	Line:      "line",
	Circle:    "circle",
	Rectangle: "rectangle",
	Freehand:  "freehand",
	Eraser:    "eraser",
	Cut:       "cut",
}

// String returns the lower-case tool name.
func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// ParseShape returns the tool with the given name, ignoring case.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range shapeNames {
		if n == name {
			return Shape(s), nil
		}
	}
	return None, fmt.Errorf("snapmark: unknown shape %q", name)
}

// stroked reports whether the tool follows the pointer path.
func (s Shape) stroked() bool {
	return s == Freehand || s == Eraser
}

// dragged reports whether the tool draws between press and release.
func (s Shape) dragged() bool {
	return s == Line || s == Circle || s == Rectangle
}

// Default tool settings.
const (
	DefaultColor     = pixmap.Red
	DefaultThickness = 5
)

// ToolState is the editor's current tool selection.
type ToolState struct {
	Shape     Shape
	Color     pixmap.Color
	Thickness int
	// Fill selects solid circles and rectangles instead of outlines.
	Fill bool
}

// DefaultToolState returns the settings a new session starts with.
func DefaultToolState() ToolState {
	return ToolState{
		Shape:     None,
		Color:     DefaultColor,
		Thickness: DefaultThickness,
	}
}

// ToolCommand changes one aspect of a ToolState.
type ToolCommand func(*ToolState)

// SelectShape switches to the given tool.
func SelectShape(s Shape) ToolCommand {
	return func(ts *ToolState) {
		ts.Shape = s
	}
}

// SetFill toggles solid shapes.
func SetFill(fill bool) ToolCommand {
	return func(ts *ToolState) {
		ts.Fill = fill
	}
}

// SetColor sets the paint color.
func SetColor(c pixmap.Color) ToolCommand {
	return func(ts *ToolState) {
		ts.Color = c
	}
}

// SetThickness sets the stroke width in pixels; values below 1 become 1.
func SetThickness(t int) ToolCommand {
	return func(ts *ToolState) {
		ts.Thickness = max(t, 1)
	}
}

// Apply runs the commands in order.
func (ts *ToolState) Apply(cmds ...ToolCommand) {
	for _, cmd := range cmds {
		if cmd != nil {
			cmd(ts)
		}
	}
}
