package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 12, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0, G: 0, B: 255, A: 255})
		}
	}
	img.SetNRGBA(3, 3, color.NRGBA{R: 255, A: 255})
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", PNG},
		{"PNG", PNG},
		{".png", PNG},
		{"jpg", JPEG},
		{".JPEG", JPEG},
		{"Gif", GIF},
		{"bmp", BMP},
		{"tif", TIFF},
		{"TIFF", TIFF},
		{" pdf ", PDF},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", ".", "webp", "svg"} {
		if _, err := ParseFormat(bad); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ParseFormat(%q) err = %v, want ErrUnsupportedFormat", bad, err)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, err := FormatFromPath("/tmp/shot.JPG"); err != nil || f != JPEG {
		t.Errorf("FormatFromPath(shot.JPG) = %v, %v", f, err)
	}
	if _, err := FormatFromPath("/tmp/shot"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatFromPath without extension err = %v", err)
	}
}

func TestFormatNames(t *testing.T) {
	for _, f := range Formats() {
		back, err := ParseFormat(f.Ext())
		if err != nil || back != f {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", f.Ext(), back, err, f)
		}
		if f.Title() == "" || f.Title()[0] < 'A' || f.Title()[0] > 'Z' {
			t.Errorf("%v.Title() = %q", f, f.Title())
		}
	}
	if got := Format(99).String(); got != "Format(99)" {
		t.Errorf("unknown String() = %q", got)
	}
}

func TestDefaultFileName(t *testing.T) {
	ts := time.Date(2024, 3, 9, 17, 45, 2, 0, time.UTC)
	if got, want := DefaultFileName(ts, PNG), "image 24-03-09 174502.png"; got != want {
		t.Errorf("DefaultFileName() = %q, want %q", got, want)
	}
	if got := DefaultFileName(ts, JPEG); !strings.HasSuffix(got, ".jpg") {
		t.Errorf("DefaultFileName(JPEG) = %q", got)
	}
}

func TestEncodeDecodeLossless(t *testing.T) {
	for _, f := range []Format{PNG, BMP, TIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, testImage(), f); err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			img, got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if got != f {
				t.Errorf("Decode() format = %v, want %v", got, f)
			}
			if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
				t.Errorf("bounds = %v", img.Bounds())
			}
			r, g, b, a := img.At(3, 3).RGBA()
			if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
				t.Errorf("At(3,3) = (%#x, %#x, %#x, %#x), want red", r, g, b, a)
			}
		})
	}
}

func TestEncodeLossy(t *testing.T) {
	for _, f := range []Format{JPEG, GIF} {
		var buf bytes.Buffer
		if err := Encode(&buf, testImage(), f); err != nil {
			t.Fatalf("Encode(%v) error: %v", f, err)
		}
		img, got, err := Decode(&buf)
		if err != nil {
			t.Fatalf("Decode(%v) error: %v", f, err)
		}
		if got != f || img.Bounds().Dx() != 12 {
			t.Errorf("Decode(%v) = %v with bounds %v", f, got, img.Bounds())
		}
	}
}

func TestEncodePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), PDF); err != nil {
		t.Fatalf("Encode(PDF) error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("PDF output starts with %q", buf.Bytes()[:min(8, buf.Len())])
	}
	if !bytes.Contains(buf.Bytes(), []byte("/Image")) {
		t.Error("PDF output has no embedded image")
	}
}

func TestEncodeErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, image.NewNRGBA(image.Rectangle{}), PNG); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Encode(empty) err = %v, want ErrEmptyImage", err)
	}
	if err := Encode(&buf, testImage(), Format(42)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(unknown) err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")

	if err := Save(path, testImage()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	img, f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if f != PNG || img.Bounds().Dx() != 12 {
		t.Errorf("Load() = %v with bounds %v", f, img.Bounds())
	}

	if err := Save(filepath.Join(dir, "shot.xyz"), testImage()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.xyz) err = %v", err)
	}
	if _, _, err := Load(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) err = %v, want os.ErrNotExist", err)
	}
}

func TestSaveAsIgnoresExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.dat")
	if err := SaveAs(path, testImage(), BMP); err != nil {
		t.Fatalf("SaveAs() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("BM")) {
		t.Errorf("SaveAs(BMP) wrote %q header", data[:2])
	}
}
