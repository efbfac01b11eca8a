package pixmap

import (
	"errors"
	"image/color"
	"testing"
)

func TestColorChannels(t *testing.T) {
	c := RGBA8(0x12, 0x34, 0x56, 0x78)
	if c != 0x12345678 {
		t.Errorf("RGBA8 = %#x, want 0x12345678", uint32(c))
	}
	r, g, b, a := c.Channels()
	if r != 0x12 || g != 0x34 || b != 0x56 || a != 0x78 {
		t.Errorf("Channels() = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
	if s := c.String(); s != "#12345678" {
		t.Errorf("String() = %q", s)
	}
}

func TestColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque red", Red, 0xffff, 0, 0, 0xffff},
		{"opaque white", White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"half alpha red", RGBA8(255, 0, 0, 128), 0x8080, 0, 0, 0x8080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (%#x, %#x, %#x, %#x)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	if got := FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 4}); got != RGBA8(1, 2, 3, 4) {
		t.Errorf("FromColor(NRGBA) = %v", got)
	}
	if got := FromColor(color.RGBA{R: 255, A: 255}); got != Red {
		t.Errorf("FromColor(RGBA red) = %v", got)
	}
	if got := FromColor(Blue); got != Blue {
		t.Errorf("FromColor(Color) = %v", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#f00", Red},
		{"0f0", Green},
		{"00f8", RGBA8(0, 0, 0xff, 0x88)},
		{"#FFFF00", Yellow},
		{"ff0000ff", Red},
		{"11223344", 0x11223344},
	}
	for _, tt := range tests {
		got, err := Hex(tt.in)
		if err != nil {
			t.Errorf("Hex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#", "12345", "gg0000", "ff00zz"} {
		if _, err := Hex(bad); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("Hex(%q) err = %v, want ErrInvalidHex", bad, err)
		}
	}
}
