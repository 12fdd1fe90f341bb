// Package convert turns a VisDrone MOT dataset directory into one
// COCO-style JSON document. The whole conversion is a single linear pass:
// discover sequences, parse their annotation files, map rows to COCO
// records under run-global ids, and write the assembled document.
package convert

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"

	ansi "github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/dronevision/mot2coco/internal/coco"
	"github.com/dronevision/mot2coco/internal/logging"
	"github.com/dronevision/mot2coco/internal/preset"
	"github.com/dronevision/mot2coco/internal/visdrone"
)

// Options configures one conversion run.
type Options struct {
	Preset preset.Preset

	// Width and Height override dimension probing when both are set.
	Width  int
	Height int

	// Indent is the JSON indent width of the output file (0 = compact).
	Indent int

	// Force allows overwriting an existing output file.
	Force bool

	// Strict promotes every skip-and-warn condition to a fatal error.
	Strict bool

	// NoProgress suppresses the progress bar (useful for scripted runs).
	NoProgress bool

	Logger *slog.Logger
}

// Result summarises a finished conversion run.
type Result struct {
	OutputPath       string
	Sequences        int
	SkippedSequences []string
	Images           int
	Annotations      int
	SkippedLines     int
	DroppedRows      int
}

// Converter runs the conversion pipeline. One Converter serves one run;
// the id allocator inside Run is discarded with it.
type Converter struct {
	opts Options
	log  *slog.Logger
}

// New creates a Converter.
func New(opts Options) *Converter {
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger("info")
	}
	return &Converter{
		opts: opts,
		log:  logging.WithComponent(opts.Logger, "convert"),
	}
}

// Run converts the dataset rooted at root and writes
// annotations/<dataset_name>.json inside it. The returned Result is valid
// only when err is nil.
func (c *Converter) Run(root string) (*Result, error) {
	if err := c.opts.Preset.Validate(); err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset root: %w", err)
	}

	sequences, missing, err := visdrone.DiscoverSequences(absRoot)
	if err != nil {
		return nil, err
	}

	res := &Result{SkippedSequences: missing}
	for _, name := range missing {
		if c.opts.Strict {
			return nil, fmt.Errorf("sequence %s has no annotation file", name)
		}
		c.log.Warn("skipping sequence without annotation file", "sequence", name)
	}
	if len(sequences) == 0 {
		return nil, fmt.Errorf("%w: every sequence is missing its annotation file", visdrone.ErrNoSequences)
	}

	p := c.opts.Preset
	doc := coco.NewDocument(coco.BuildCategories(p.CategoryIDStart, p.CategoryNames))
	alloc := NewAllocator(p)

	var bar *progressbar.ProgressBar
	if !c.opts.NoProgress {
		bar = progressbar.NewOptions(len(sequences),
			progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription("[cyan]converting[reset]"),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
		)
	}

	for i, seq := range sequences {
		videoID := p.VideoIDStart + i
		if err := c.convertSequence(doc, alloc, seq, videoID, res); err != nil {
			return nil, fmt.Errorf("sequence %s: %w", seq.Name, err)
		}
		alloc.FinishSequence()
		if bar != nil {
			bar.Add(1)
		}
	}

	res.Sequences = len(sequences)
	res.Images = len(doc.Images)
	res.Annotations = len(doc.Annotations)

	outPath := filepath.Join(absRoot, visdrone.AnnotationsDir, filepath.Base(absRoot)+".json")
	if err := coco.WriteFile(doc, outPath, c.opts.Indent, c.opts.Force); err != nil {
		return nil, err
	}
	res.OutputPath = outPath

	c.log.Info("conversion complete",
		"output", logging.SanitizePath(outPath),
		"sequences", res.Sequences,
		"images", res.Images,
		"annotations", res.Annotations,
		"skipped_lines", res.SkippedLines,
		"dropped_rows", res.DroppedRows,
	)
	return res, nil
}

// convertSequence maps one sequence's rows into the shared document.
func (c *Converter) convertSequence(doc *coco.Document, alloc *Allocator, seq visdrone.Sequence, videoID int, res *Result) error {
	log := logging.WithSequence(c.log, seq.Name)
	p := c.opts.Preset

	rows, skipped, err := visdrone.ParseFile(seq.AnnotationPath)
	if err != nil {
		return err
	}
	for _, s := range skipped {
		if c.opts.Strict {
			return fmt.Errorf("%s:%d: %s", seq.AnnotationPath, s.Line, s.Reason)
		}
		log.Warn("skipping malformed row",
			"file", seq.AnnotationPath, "line", s.Line, "reason", s.Reason)
	}
	res.SkippedLines += len(skipped)

	frames, err := ListFrames(seq.ImageDir)
	if err != nil {
		log.Warn("cannot list sequence frames, using synthetic file names", "error", err)
		frames = nil
	}

	width, height := c.opts.Width, c.opts.Height
	if width <= 0 || height <= 0 {
		width, height, err = ProbeDimensions(seq.ImageDir, frames)
		if err != nil {
			// Known limitation: without a probeable frame or -width/-height
			// overrides the image records carry zero dimensions.
			log.Warn("image dimensions unavailable, recording 0x0", "error", err)
			width, height = 0, 0
		}
	}

	doc.AddVideo(coco.Video{
		ID:       videoID,
		FileName: path.Join(visdrone.SequencesDir, seq.Name),
	})

	firstImage := len(doc.Images)
	dropped := 0

	for _, row := range rows {
		if row.Score == 0 {
			// Score 0 marks ignored regions in VisDrone MOT.
			if c.opts.Strict {
				return fmt.Errorf("row with zero score (frame %d, target %d)", row.Frame, row.Target)
			}
			dropped++
			continue
		}
		if row.Category < 1 || row.Category > len(p.CategoryNames) {
			if c.opts.Strict {
				return fmt.Errorf("unknown category %d (frame %d, target %d)", row.Category, row.Frame, row.Target)
			}
			log.Debug("dropping row with unknown category",
				"category", row.Category, "frame", row.Frame, "target", row.Target)
			dropped++
			continue
		}

		imageID, created := alloc.ImageID(seq.Name, row.Frame)
		if created {
			doc.AddImage(coco.Image{
				ID:       imageID,
				FileName: c.frameFileName(seq.Name, frames, row.Frame),
				FrameID:  p.FrameIDStart + row.Frame - 1,
				VideoID:  videoID,
				Width:    width,
				Height:   height,
			})
		}

		doc.AddAnnotation(coco.Annotation{
			ID:         alloc.NextAnnotationID(),
			ImageID:    imageID,
			CategoryID: p.CategoryIDStart + row.Category - 1,
			TrackID:    alloc.TrackID(row.Target),
			BBox:       [4]int{row.Left, row.Top, row.Width, row.Height},
			Area:       row.Width * row.Height,
			IsCrowd:    0,
		})
	}

	// Frame adjacency links point at the nearest emitted frame of the
	// sequence, known only once all rows are mapped. A frame whose rows
	// were all dropped leaves no image, so literal frame_id±1 would
	// dangle; linking across the gap keeps every reference resolvable.
	emitted := make([]int, 0, len(doc.Images)-firstImage)
	for i := firstImage; i < len(doc.Images); i++ {
		emitted = append(emitted, doc.Images[i].FrameID)
	}
	sort.Ints(emitted)
	prevOf := make(map[int]int, len(emitted))
	nextOf := make(map[int]int, len(emitted))
	for i, f := range emitted {
		prevOf[f], nextOf[f] = -1, -1
		if i > 0 {
			prevOf[f] = emitted[i-1]
		}
		if i < len(emitted)-1 {
			nextOf[f] = emitted[i+1]
		}
	}
	for i := firstImage; i < len(doc.Images); i++ {
		doc.Images[i].PrevFrameID = prevOf[doc.Images[i].FrameID]
		doc.Images[i].NextFrameID = nextOf[doc.Images[i].FrameID]
	}

	res.DroppedRows += dropped
	log.Debug("sequence converted",
		"rows", len(rows), "skipped", len(skipped), "dropped", dropped,
		"images", len(doc.Images)-firstImage)
	return nil
}

// frameFileName resolves the file_name of a frame from the sequence
// directory listing, falling back to the VisDrone zero-padded naming
// convention when the directory was unreadable or shorter than the
// annotation file claims.
func (c *Converter) frameFileName(sequence string, frames []string, frame int) string {
	if frame >= 1 && frame <= len(frames) {
		return path.Join(visdrone.SequencesDir, sequence, frames[frame-1])
	}
	return path.Join(visdrone.SequencesDir, sequence, fmt.Sprintf("%07d.jpg", frame))
}
