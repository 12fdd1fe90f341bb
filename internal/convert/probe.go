package convert

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// Frame decoders for dimension probing. VisDrone ships JPEG frames;
	// the extra formats cover dataset variants re-encoded by other tools.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var frameExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// ListFrames returns the frame image filenames of a sequence directory in
// lexicographic order. VisDrone names frames with zero-padded indices
// (0000001.jpg, ...), so lexicographic order is frame order.
func ListFrames(imageDir string) ([]string, error) {
	entries, err := os.ReadDir(imageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if frameExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ProbeDimensions reads the header of the first frame of a sequence and
// returns its pixel dimensions. Only the header is decoded, never pixel
// data. VisDrone sequences keep one resolution throughout, so the first
// frame stands for all of them.
func ProbeDimensions(imageDir string, frames []string) (width, height int, err error) {
	if len(frames) == 0 {
		return 0, 0, fmt.Errorf("no frame images in %s", imageDir)
	}

	f, err := os.Open(filepath.Join(imageDir, frames[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open frame: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode frame header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
