package snapmark

import "github.com/gogpu/snapmark/internal/imageio"

// Format is an output file format for saved images.
type Format = imageio.Format

// Supported output formats.
const (
	FormatPNG  = imageio.PNG
	FormatJPEG = imageio.JPEG
	FormatGIF  = imageio.GIF
	FormatBMP  = imageio.BMP
	FormatTIFF = imageio.TIFF
	FormatPDF  = imageio.PDF
)

// ErrUnsupportedFormat is returned for unknown format names and
// extensions.
var ErrUnsupportedFormat = imageio.ErrUnsupportedFormat

// ParseFormat returns the format with the given name or extension,
// ignoring case ("png", ".JPG", "tif").
func ParseFormat(name string) (Format, error) {
	return imageio.ParseFormat(name)
}

// Formats lists every supported output format.
func Formats() []Format {
	return imageio.Formats()
}
