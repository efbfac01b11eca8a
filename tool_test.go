package snapmark

import (
	"testing"

	"github.com/gogpu/snapmark/pixmap"
)

func TestDefaultToolState(t *testing.T) {
	ts := DefaultToolState()
	if ts.Shape != None {
		t.Errorf("Shape = %v, want none", ts.Shape)
	}
	if ts.Color != pixmap.Color(0xff0000ff) {
		t.Errorf("Color = %v, want #ff0000ff", ts.Color)
	}
	if ts.Thickness != DefaultThickness || ts.Fill {
		t.Errorf("Thickness = %d, Fill = %v", ts.Thickness, ts.Fill)
	}
}

func TestToolStateApply(t *testing.T) {
	ts := DefaultToolState()
	ts.Apply(
		SelectShape(Circle),
		SetFill(true),
		SetColor(pixmap.Green),
		nil,
		SetThickness(9),
	)

	want := ToolState{Shape: Circle, Color: pixmap.Green, Thickness: 9, Fill: true}
	if ts != want {
		t.Errorf("Apply() = %+v, want %+v", ts, want)
	}

	ts.Apply(SetThickness(0))
	if ts.Thickness != 1 {
		t.Errorf("SetThickness(0) gave %d, want 1", ts.Thickness)
	}
	ts.Apply(SetThickness(-4))
	if ts.Thickness != 1 {
		t.Errorf("SetThickness(-4) gave %d, want 1", ts.Thickness)
	}
}

func TestShapeNames(t *testing.T) {
	for _, s := range []Shape{None, Line, Circle, Rectangle, Freehand, Eraser, Cut} {
		got, err := ParseShape(s.String())
		if err != nil || got != s {
			t.Errorf("ParseShape(%q) = %v, %v", s.String(), got, err)
		}
	}
	if s, err := ParseShape(" Rectangle "); err != nil || s != Rectangle {
		t.Errorf("ParseShape(\" Rectangle \") = %v, %v", s, err)
	}
	if _, err := ParseShape("triangle"); err == nil {
		t.Error("ParseShape(\"triangle\") should fail")
	}
	if got := Shape(42).String(); got != "Shape(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestShapeKinds(t *testing.T) {
	tests := []struct {
		s                Shape
		stroked, dragged bool
	}{
		{None, false, false},
		{Line, false, true},
		{Circle, false, true},
		{Rectangle, false, true},
		{Freehand, true, false},
		{Eraser, true, false},
		{Cut, false, false},
	}
	for _, tt := range tests {
		if tt.s.stroked() != tt.stroked || tt.s.dragged() != tt.dragged {
			t.Errorf("%v: stroked=%v dragged=%v", tt.s, tt.s.stroked(), tt.s.dragged())
		}
	}
}
