// Command snapmark annotates an image file with a scripted list of shapes,
// strokes, erasures and crops.
//
//	snapmark -in shot.png -script ops.txt -out annotated.png
//	snapmark -in shot.png -script ops.txt -dir ~/Pictures -format jpg -thumb 320
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/snapmark"
	"github.com/gogpu/snapmark/internal/imageio"
	"github.com/gogpu/snapmark/pixmap"
)

func main() {
	var (
		in      = flag.String("in", "", "input image")
		script  = flag.String("script", "", "annotation script (default stdin)")
		out     = flag.String("out", "", "output file; format from extension")
		dir     = flag.String("dir", ".", "output directory when -out is not set")
		format  = flag.String("format", "png", "output format when -out is not set: "+formatList())
		thumb   = flag.Int("thumb", 0, "also write a thumbnail this many pixels wide")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		snapmark.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img, _, err := imageio.Load(*in)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	s := snapmark.NewSession(pixmap.FromImage(img))

	if err := runScriptFile(s, *script); err != nil {
		log.Fatalf("Script failed: %v", err)
	}

	path := *out
	if path == "" {
		f, err := snapmark.ParseFormat(*format)
		if err != nil {
			log.Fatalf("Invalid format: %v", err)
		}
		var done <-chan error
		path, done = s.SaveInBackground(*dir, f)
		if err := <-done; err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	} else if err := s.SaveFile(path); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	final := s.Image()
	log.Printf("Annotated image saved to %s (%dx%d)\n", path, final.Width(), final.Height())

	if *thumb > 0 {
		tp, err := writeThumbnail(final, path, *thumb)
		if err != nil {
			log.Fatalf("Failed to save thumbnail: %v", err)
		}
		log.Printf("Thumbnail saved to %s\n", tp)
	}
}

// runScriptFile runs the script at path against s, or stdin when path is
// empty.
func runScriptFile(s *snapmark.Session, path string) error {
	if path == "" {
		return runScript(s, os.Stdin)
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return err
	}
	err = runScript(s, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// formatList names the output formats for the -format usage text,
// e.g. "Png, Jpeg, Gif".
func formatList() string {
	names := make([]string, 0, len(snapmark.Formats()))
	for _, f := range snapmark.Formats() {
		names = append(names, f.Title())
	}
	return strings.Join(names, ", ")
}

// writeThumbnail stores a copy of pm scaled to width next to path, keeping
// the aspect ratio.
func writeThumbnail(pm *pixmap.Pixmap, path string, width int) (string, error) {
	height := max(pm.Height()*width/max(pm.Width(), 1), 1)
	t := pm.Scale(width, height, true)

	ext := filepath.Ext(path)
	tp := strings.TrimSuffix(path, ext) + "-thumb" + ext
	return tp, imageio.Save(tp, t)
}
