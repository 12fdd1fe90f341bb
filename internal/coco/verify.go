package coco

import "fmt"

// Problem is one integrity defect found in a document.
type Problem struct {
	Kind   string
	Detail string
}

func (p Problem) String() string {
	return p.Kind + ": " + p.Detail
}

// Verify checks the referential integrity of a document: id uniqueness
// within each array, annotation references resolving to existing images
// and categories, image references resolving to existing videos, and
// track ids not being reused across the document. It returns every
// problem found rather than stopping at the first.
func Verify(doc *Document) []Problem {
	var problems []Problem

	imageIDs := make(map[int]bool, len(doc.Images))
	videoIDs := make(map[int]bool, len(doc.Videos))
	categoryIDs := make(map[int]bool, len(doc.Categories))

	for _, v := range doc.Videos {
		if videoIDs[v.ID] {
			problems = append(problems, Problem{"duplicate-video-id", fmt.Sprintf("video id %d appears more than once", v.ID)})
		}
		videoIDs[v.ID] = true
	}

	for _, c := range doc.Categories {
		if categoryIDs[c.ID] {
			problems = append(problems, Problem{"duplicate-category-id", fmt.Sprintf("category id %d appears more than once", c.ID)})
		}
		categoryIDs[c.ID] = true
	}

	type videoFrame struct{ video, frame int }
	emittedFrames := make(map[videoFrame]bool, len(doc.Images))

	for _, img := range doc.Images {
		if imageIDs[img.ID] {
			problems = append(problems, Problem{"duplicate-image-id", fmt.Sprintf("image id %d appears more than once", img.ID)})
		}
		imageIDs[img.ID] = true
		emittedFrames[videoFrame{img.VideoID, img.FrameID}] = true
		if len(doc.Videos) > 0 && !videoIDs[img.VideoID] {
			problems = append(problems, Problem{"dangling-video-ref", fmt.Sprintf("image %d references missing video %d", img.ID, img.VideoID)})
		}
	}

	// prev/next frame links must resolve to a frame the document emits;
	// -1 marks a sequence boundary.
	for _, img := range doc.Images {
		if img.PrevFrameID != -1 && !emittedFrames[videoFrame{img.VideoID, img.PrevFrameID}] {
			problems = append(problems, Problem{"dangling-frame-ref", fmt.Sprintf("image %d links prev_frame_id %d, which video %d never emits", img.ID, img.PrevFrameID, img.VideoID)})
		}
		if img.NextFrameID != -1 && !emittedFrames[videoFrame{img.VideoID, img.NextFrameID}] {
			problems = append(problems, Problem{"dangling-frame-ref", fmt.Sprintf("image %d links next_frame_id %d, which video %d never emits", img.ID, img.NextFrameID, img.VideoID)})
		}
	}

	type frameTrack struct{ image, track int }

	annIDs := make(map[int]bool, len(doc.Annotations))
	seenInFrame := make(map[frameTrack]bool, len(doc.Annotations))

	for _, ann := range doc.Annotations {
		if annIDs[ann.ID] {
			problems = append(problems, Problem{"duplicate-annotation-id", fmt.Sprintf("annotation id %d appears more than once", ann.ID)})
		}
		annIDs[ann.ID] = true

		if !imageIDs[ann.ImageID] {
			problems = append(problems, Problem{"dangling-image-ref", fmt.Sprintf("annotation %d references missing image %d", ann.ID, ann.ImageID)})
		}
		if !categoryIDs[ann.CategoryID] {
			problems = append(problems, Problem{"dangling-category-ref", fmt.Sprintf("annotation %d references missing category %d", ann.ID, ann.CategoryID)})
		}
		if want := ann.BBox[2] * ann.BBox[3]; ann.Area != want {
			problems = append(problems, Problem{"bad-area", fmt.Sprintf("annotation %d has area %d, bbox implies %d", ann.ID, ann.Area, want)})
		}

		// A track may span many frames of one sequence, but the same
		// (image, track) pair must not carry two annotations.
		key := frameTrack{ann.ImageID, ann.TrackID}
		if seenInFrame[key] {
			problems = append(problems, Problem{"duplicate-track-in-frame", fmt.Sprintf("track %d annotated twice in image %d", ann.TrackID, ann.ImageID)})
		}
		seenInFrame[key] = true
	}

	return problems
}
