// Command mot2coco converts VisDrone MOT annotation directories into one
// COCO-style JSON file per dataset root.
//
// Usage:
//
//	mot2coco [flags] <dataset-root>
//	mot2coco -verify <file.json>
//
// The dataset root must contain the two VisDrone subdirectories
// sequences/ and annotations/. The output file is written to
// annotations/<dataset_name>.json inside the root.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dronevision/mot2coco/internal/coco"
	"github.com/dronevision/mot2coco/internal/config"
	"github.com/dronevision/mot2coco/internal/convert"
	"github.com/dronevision/mot2coco/internal/logging"
	"github.com/dronevision/mot2coco/internal/preset"
	"github.com/dronevision/mot2coco/internal/visdrone"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mot2coco: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(os.Stderr, "  mot2coco [flags] <dataset-root>")
		fmt.Fprintln(os.Stderr, "  mot2coco -verify <file.json>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}

	var (
		logLevel   = flag.String("log-level", cfg.LogLevel(), "log `level` (debug, info, warn, error)")
		presetName = flag.String("preset", cfg.PresetName(), "dataset preset `name`")
		presetFile = flag.String("preset-file", cfg.PresetFile(), "TOML `path` with dataset presets (empty uses built-ins)")
		indent     = flag.Int("indent", cfg.Indent(), "JSON indent `width` for the output file (0 = compact)")
		width      = flag.Int("width", 0, "image width in `pixels`, overrides frame probing (use with -height)")
		height     = flag.Int("height", 0, "image height in `pixels`, overrides frame probing (use with -width)")
		force      = flag.Bool("force", false, "overwrite an existing output file")
		strict     = flag.Bool("strict", false, "treat every skipped row or sequence as a fatal error")
		noProgress = flag.Bool("no-progress", false, "disable the progress bar")
		verify     = flag.Bool("verify", false, "verify the integrity of an existing COCO JSON file instead of converting")
		version    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Printf("mot2coco %s (built %s, commit %s)\n", config.Version, config.BuildTime, config.GitCommit)
		return nil
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return errors.New("expected exactly one argument")
	}

	logger := logging.NewLogger(*logLevel)

	if *verify {
		return runVerify(flag.Arg(0))
	}

	p, err := preset.Resolve(*presetFile, *presetName)
	if err != nil {
		return err
	}

	conv := convert.New(convert.Options{
		Preset:     p,
		Width:      *width,
		Height:     *height,
		Indent:     *indent,
		Force:      *force,
		Strict:     *strict,
		NoProgress: *noProgress,
		Logger:     logger,
	})

	res, err := conv.Run(flag.Arg(0))
	if err != nil {
		if errors.Is(err, visdrone.ErrMissingRoot) || errors.Is(err, visdrone.ErrNoSequences) {
			return err
		}
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Printf("wrote %s (%d sequences, %d images, %d annotations)\n",
		res.OutputPath, res.Sequences, res.Images, res.Annotations)
	return nil
}

func runVerify(path string) error {
	doc, err := coco.Load(path)
	if err != nil {
		return err
	}

	problems := coco.Verify(doc)
	for _, p := range problems {
		fmt.Fprintln(os.Stderr, p)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d integrity problem(s) in %s", len(problems), path)
	}

	fmt.Printf("%s: ok (%d images, %d annotations, %d categories, %d videos)\n",
		path, len(doc.Images), len(doc.Annotations), len(doc.Categories), len(doc.Videos))
	return nil
}
