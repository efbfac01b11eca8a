package pixmap

import (
	"image"
	"testing"

	"github.com/gogpu/snapmark/raster"
)

func filled(w, h int, c Color) *Pixmap {
	pm := New(w, h)
	pm.Clear(c)
	return pm
}

func TestApplyRecordsAndPaints(t *testing.T) {
	pm := filled(8, 8, Blue)
	h := NewHistory()

	dirty := pm.Apply(raster.NewSet(image.Pt(3, 3), image.Pt(4, 3)), Red, h)

	if dirty != image.Rect(3, 3, 5, 4) {
		t.Errorf("dirty = %v, want (3,3)-(5,4)", dirty)
	}
	if got := pm.ColorAt(3, 3); got != Red {
		t.Errorf("ColorAt(3,3) = %v, want %v", got, Red)
	}
	if h.Len() != 2 {
		t.Fatalf("history len = %d, want 2", h.Len())
	}
	if c, ok := h.Original(image.Pt(4, 3)); !ok || c != Blue {
		t.Errorf("Original(4,3) = %v, %v; want %v, true", c, ok, Blue)
	}
}

func TestApplyDropsOutOfBounds(t *testing.T) {
	pm := filled(4, 4, Black)
	orig := pm.Clone()
	h := NewHistory()

	dirty := pm.Apply(raster.NewSet(image.Pt(-1, 0), image.Pt(4, 1), image.Pt(2, 9)), Red, h)

	if !dirty.Empty() {
		t.Errorf("dirty = %v, want empty", dirty)
	}
	if h.Len() != 0 {
		t.Errorf("history len = %d, want 0", h.Len())
	}
	for i, v := range pm.Data() {
		if v != orig.Data()[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

func TestApplyNilHistory(t *testing.T) {
	pm := filled(4, 4, Black)
	pm.Apply(raster.NewSet(image.Pt(1, 1)), Green, nil)
	if got := pm.ColorAt(1, 1); got != Green {
		t.Errorf("ColorAt(1,1) = %v, want %v", got, Green)
	}
}

func TestEraseRestoresOriginal(t *testing.T) {
	pm := filled(8, 8, Blue)
	h := NewHistory()
	red := RGBA8(0xff, 0, 0, 0xff)

	pm.Apply(raster.NewSet(image.Pt(3, 3)), red, h)
	dirty, ok := pm.Erase(raster.Square(image.Pt(3, 3), 3), h)

	if !ok {
		t.Fatal("Erase() reported nothing restored")
	}
	if dirty != image.Rect(3, 3, 4, 4) {
		t.Errorf("dirty = %v, want (3,3)-(4,4)", dirty)
	}
	if got := pm.ColorAt(3, 3); got != Blue {
		t.Errorf("ColorAt(3,3) = %v, want %v", got, Blue)
	}
	if _, ok := h.Original(image.Pt(3, 3)); ok {
		t.Error("history still holds (3,3)")
	}
}

func TestCompositingIdempotentHistory(t *testing.T) {
	pm := filled(6, 6, White)
	h := NewHistory()
	at := raster.NewSet(image.Pt(2, 2))

	pm.Apply(at, Red, h)
	pm.Apply(at, Red, h)
	pm.Apply(at, Green, h)
	if _, ok := pm.Erase(at, h); !ok {
		t.Fatal("Erase() reported nothing restored")
	}

	if got := pm.ColorAt(2, 2); got != White {
		t.Errorf("ColorAt(2,2) = %v, want the pre-edit %v", got, White)
	}
}

func TestEraseWithoutHistory(t *testing.T) {
	pm := filled(6, 6, White)
	h := NewHistory()

	if _, ok := pm.Erase(raster.Square(image.Pt(2, 2), 4), h); ok {
		t.Error("Erase() on untouched region reported a restore")
	}

	pm.Apply(raster.NewSet(image.Pt(5, 5)), Red, h)
	if _, ok := pm.Erase(raster.Square(image.Pt(1, 1), 2), h); ok {
		t.Error("Erase() away from edits reported a restore")
	}
	if h.Len() != 1 {
		t.Errorf("history len = %d, want 1", h.Len())
	}
	if _, ok := pm.Erase(raster.NewSet(), nil); ok {
		t.Error("Erase() with nil history reported a restore")
	}
}

func TestEraseIsPartial(t *testing.T) {
	pm := filled(10, 10, White)
	h := NewHistory()
	pm.Apply(raster.Line(image.Pt(0, 5), image.Pt(9, 5), 1), Black, h)

	pm.Erase(raster.Rectangle(image.Pt(0, 0), image.Pt(4, 9), 1, true), h)

	for x := 0; x < 10; x++ {
		want := Black
		if x <= 4 {
			want = White
		}
		if got := pm.ColorAt(x, 5); got != want {
			t.Errorf("ColorAt(%d,5) = %v, want %v", x, got, want)
		}
	}
	if h.Len() != 5 {
		t.Errorf("history len = %d, want 5", h.Len())
	}
}

func TestBrush(t *testing.T) {
	pm := filled(10, 10, White)
	h := NewHistory()

	dirty := pm.Brush(image.Pt(0, 0), 3, Red, h)

	if dirty != image.Rect(0, 0, 2, 2) {
		t.Errorf("dirty = %v, want (0,0)-(2,2)", dirty)
	}
	if h.Len() != 4 {
		t.Errorf("history len = %d, want 4", h.Len())
	}
}

func TestHistoryReset(t *testing.T) {
	var h History
	if h.Len() != 0 {
		t.Fatal("zero History not empty")
	}
	pm := filled(3, 3, White)
	pm.Apply(raster.NewSet(image.Pt(1, 1)), Red, &h)
	h.Reset()
	if h.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", h.Len())
	}
	if _, ok := pm.Erase(raster.NewSet(image.Pt(1, 1)), &h); ok {
		t.Error("Erase() after Reset reported a restore")
	}
}
