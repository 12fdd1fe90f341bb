package convert

import "github.com/dronevision/mot2coco/internal/preset"

type frameKey struct {
	sequence string
	frame    int
}

// Allocator hands out the globally unique ids of one conversion run. It is
// an explicit value threaded through the per-sequence processing rather
// than package state, so allocation stays testable in isolation and a
// future parallel runner could pre-partition ranges instead.
//
// Image and annotation ids count up from the preset start values and are
// never reset mid-run. Image ids are deduplicated by (sequence, frame):
// the first row touching a pair allocates, later rows reuse.
//
// Track ids are made globally unique by offsetting each sequence's raw
// target ids past the highest track id any earlier sequence produced.
type Allocator struct {
	nextImage      int
	nextAnnotation int
	trackIDStart   int
	trackOffset    int
	maxTrack       int
	images         map[frameKey]int
}

// NewAllocator creates an allocator seeded from the preset's start values.
func NewAllocator(p preset.Preset) *Allocator {
	return &Allocator{
		nextImage:      p.ImageIDStart(),
		nextAnnotation: p.AnnotationIDStart,
		trackIDStart:   p.TrackIDStart,
		maxTrack:       p.TrackIDStart - 1,
		images:         make(map[frameKey]int),
	}
}

// ImageID returns the image id for (sequence, frame), allocating a fresh
// id on first encounter. created reports whether this call allocated.
func (a *Allocator) ImageID(sequence string, frame int) (id int, created bool) {
	key := frameKey{sequence, frame}
	if id, ok := a.images[key]; ok {
		return id, false
	}
	id = a.nextImage
	a.nextImage++
	a.images[key] = id
	return id, true
}

// NextAnnotationID allocates the next annotation id.
func (a *Allocator) NextAnnotationID() int {
	id := a.nextAnnotation
	a.nextAnnotation++
	return id
}

// TrackID maps a sequence-local target id to its run-global track id.
func (a *Allocator) TrackID(target int) int {
	id := target + a.trackOffset
	if id > a.maxTrack {
		a.maxTrack = id
	}
	return id
}

// FinishSequence advances the track offset past every track id the
// finished sequence used, so the next sequence's targets cannot collide.
func (a *Allocator) FinishSequence() {
	a.trackOffset = a.maxTrack + 1 - a.trackIDStart
}

// Images returns how many distinct images have been allocated.
func (a *Allocator) Images() int {
	return len(a.images)
}
