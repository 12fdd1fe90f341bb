// Package visdrone reads the VisDrone MOT dataset layout: a root directory
// with a sequences/ subdirectory of frame-image folders and an annotations/
// subdirectory with one comma-separated .txt file per sequence.
package visdrone

import (
	"fmt"
	"strconv"
	"strings"
)

// rowFields is the column count of the VisDrone MOT annotation schema.
const rowFields = 10

// Row is one parsed annotation line:
//
//	frame_index,target_id,bbox_left,bbox_top,bbox_width,bbox_height,
//	score,object_category,truncation,occlusion
//
// Frame indices are 1-based. Score is 0 for regions the annotators marked
// as ignored and 1 otherwise. Category is the raw VisDrone class index
// (0 = ignored regions, 1-10 = taxonomy classes, 11 = others).
type Row struct {
	Frame      int
	Target     int
	Left       int
	Top        int
	Width      int
	Height     int
	Score      int
	Category   int
	Truncation int
	Occlusion  int
}

// ParseRow parses a single annotation line. VisDrone files frequently end
// lines with a trailing comma; one trailing empty field is tolerated.
func ParseRow(line string) (Row, error) {
	fields := strings.Split(line, ",")
	if n := len(fields); n == rowFields+1 && fields[rowFields] == "" {
		fields = fields[:rowFields]
	}
	if len(fields) != rowFields {
		return Row{}, fmt.Errorf("expected %d fields, got %d", rowFields, len(fields))
	}

	vals := make([]int, rowFields)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Row{}, fmt.Errorf("field %d is not an integer: %q", i+1, f)
		}
		vals[i] = v
	}

	r := Row{
		Frame:      vals[0],
		Target:     vals[1],
		Left:       vals[2],
		Top:        vals[3],
		Width:      vals[4],
		Height:     vals[5],
		Score:      vals[6],
		Category:   vals[7],
		Truncation: vals[8],
		Occlusion:  vals[9],
	}

	if r.Frame < 1 {
		return Row{}, fmt.Errorf("frame_index must be >= 1, got %d", r.Frame)
	}
	if r.Left < 0 || r.Top < 0 || r.Width < 0 || r.Height < 0 {
		return Row{}, fmt.Errorf("bbox must be non-negative, got [%d,%d,%d,%d]",
			r.Left, r.Top, r.Width, r.Height)
	}

	return r, nil
}
