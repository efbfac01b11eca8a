// Package imageio encodes and decodes annotated images in the formats the
// editor can save to.
package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a format name or file extension
	// is not recognized.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyImage is returned when encoding an image with no pixels.
	ErrEmptyImage = errors.New("imageio: empty image")
)

// Format identifies an output file format.
type Format uint8

// Supported formats.
const (
	PNG Format = iota
	JPEG
	GIF
	BMP
	TIFF
	PDF
)

var formatInfo = [...]struct {
	name string
	ext  string
}{
	PNG:  {"png", ".png"},
	JPEG: {"jpeg", ".jpg"},
	GIF:  {"gif", ".gif"},
	BMP:  {"bmp", ".bmp"},
	TIFF: {"tiff", ".tiff"},
	PDF:  {"pdf", ".pdf"},
}

// aliases maps every accepted spelling to its format.
var aliases = map[string]Format{
	"png":  PNG,
	"jpeg": JPEG,
	"jpg":  JPEG,
	"gif":  GIF,
	"bmp":  BMP,
	"tiff": TIFF,
	"tif":  TIFF,
	"pdf":  PDF,
}

// String returns the canonical lower-case name of the format.
func (f Format) String() string {
	if int(f) < len(formatInfo) {
		return formatInfo[f].name
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Ext returns the file extension used when saving, including the dot.
func (f Format) Ext() string {
	if int(f) < len(formatInfo) {
		return formatInfo[f].ext
	}
	return ""
}

// Formats returns every supported format in declaration order.
func Formats() []Format {
	return []Format{PNG, JPEG, GIF, BMP, TIFF, PDF}
}

// ParseFormat returns the format named by name. Matching ignores case and
// a leading dot, so "PNG", ".png" and "png" are equivalent; "jpg" and "tif"
// are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	key := cases.Fold().String(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if f, ok := aliases[key]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// DefaultFileName returns the name a capture taken at t is saved under,
// for example "image 24-03-09 174502.png".
func DefaultFileName(t time.Time, f Format) string {
	return "image " + t.Format("06-01-02 150405") + f.Ext()
}

// Title returns the display form of the format name, as shown in a
// save-as list ("Png", "Jpeg", ...).
func (f Format) Title() string {
	return cases.Title(language.English).String(f.String())
}
