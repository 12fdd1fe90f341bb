// Package preset defines dataset presets: the identifier start values and
// category taxonomy a conversion run is parameterised by. The VisDrone
// preset is built in; additional presets can be loaded from a TOML file
// keyed by preset name.
package preset

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Preset holds the start values for every identifier family in the output
// document plus the ordered category names of the dataset taxonomy.
// Category ids are assigned as CategoryIDStart + index.
type Preset struct {
	VideoIDStart      int      `toml:"video_id_start"`
	FrameIDStart      int      `toml:"frame_id_start"`
	TrackIDStart      int      `toml:"track_id_start"`
	AnnotationIDStart int      `toml:"annotation_id_start"`
	CategoryIDStart   int      `toml:"category_id_start"`
	CategoryNames     []string `toml:"category_names"`
}

// VisDroneCategoryNames is the VisDrone MOT taxonomy, raw classes 1-10.
// Raw class 0 ("ignored regions") and 11 ("others") are not part of the
// output taxonomy and rows carrying them are dropped during conversion.
var VisDroneCategoryNames = []string{
	"pedestrian", "people", "bicycle", "car", "van",
	"truck", "tricycle", "awning-tricycle", "bus", "motor",
}

// VisDrone returns the built-in preset for the VisDrone MOT dataset.
// Track ids use the COCO-side numbering (starting at 1, like the raw
// VisDrone target ids), which keeps consecutive sequences' track ranges
// contiguous after the per-sequence offsetting.
func VisDrone() Preset {
	return Preset{
		VideoIDStart:      1,
		FrameIDStart:      1,
		TrackIDStart:      1,
		AnnotationIDStart: 1,
		CategoryIDStart:   1,
		CategoryNames:     VisDroneCategoryNames,
	}
}

// ImageIDStart returns the first image id a run assigns. Image ids share
// the frame id numbering base so the first frame of the first sequence
// keeps the same id under both schemes.
func (p Preset) ImageIDStart() int {
	return p.FrameIDStart
}

// Validate reports whether the preset can drive a conversion.
func (p Preset) Validate() error {
	if len(p.CategoryNames) == 0 {
		return fmt.Errorf("preset has no category names")
	}
	if p.FrameIDStart < 0 || p.VideoIDStart < 0 || p.AnnotationIDStart < 0 {
		return fmt.Errorf("preset id start values must be non-negative")
	}
	return nil
}

// Load reads a preset by name from a TOML file. The file holds one table
// per preset:
//
//	[VisDrone]
//	video_id_start = 1
//	frame_id_start = 1
//	track_id_start = 0
//	annotation_id_start = 1
//	category_id_start = 1
//	category_names = ["pedestrian", "people", ...]
func Load(path, name string) (Preset, error) {
	var presets map[string]Preset
	if _, err := toml.DecodeFile(path, &presets); err != nil {
		return Preset{}, fmt.Errorf("failed to parse preset file: %w", err)
	}

	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("preset %q not found in %s", name, path)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return p, nil
}

// Resolve returns the preset for name, consulting file when non-empty and
// falling back to the built-ins otherwise.
func Resolve(file, name string) (Preset, error) {
	if file != "" {
		return Load(file, name)
	}
	switch name {
	case "VisDrone", "visdrone":
		return VisDrone(), nil
	default:
		return Preset{}, fmt.Errorf("unknown preset %q (built-ins: VisDrone)", name)
	}
}
