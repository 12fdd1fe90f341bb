package coco

import "testing"

func validDocument() *Document {
	doc := NewDocument(BuildCategories(1, []string{"pedestrian", "car"}))
	doc.AddVideo(Video{ID: 1, FileName: "sequences/seq1"})
	doc.AddImage(Image{ID: 1, VideoID: 1, FrameID: 1, PrevFrameID: -1, NextFrameID: 2})
	doc.AddImage(Image{ID: 2, VideoID: 1, FrameID: 2, PrevFrameID: 1, NextFrameID: -1})
	doc.AddAnnotation(Annotation{ID: 1, ImageID: 1, CategoryID: 1, TrackID: 1, BBox: [4]int{0, 0, 10, 10}, Area: 100})
	doc.AddAnnotation(Annotation{ID: 2, ImageID: 2, CategoryID: 2, TrackID: 1, BBox: [4]int{5, 5, 4, 5}, Area: 20})
	return doc
}

func problemKinds(problems []Problem) map[string]int {
	kinds := make(map[string]int)
	for _, p := range problems {
		kinds[p.Kind]++
	}
	return kinds
}

func TestVerify_CleanDocument(t *testing.T) {
	if problems := Verify(validDocument()); len(problems) != 0 {
		t.Errorf("clean document reported problems: %v", problems)
	}
}

func TestVerify_DuplicateAnnotationID(t *testing.T) {
	doc := validDocument()
	doc.AddAnnotation(Annotation{ID: 2, ImageID: 1, CategoryID: 1, TrackID: 2, BBox: [4]int{0, 0, 1, 1}, Area: 1})

	kinds := problemKinds(Verify(doc))
	if kinds["duplicate-annotation-id"] != 1 {
		t.Errorf("expected one duplicate-annotation-id problem, got %v", kinds)
	}
}

func TestVerify_DuplicateImageID(t *testing.T) {
	doc := validDocument()
	doc.AddImage(Image{ID: 1, VideoID: 1})

	kinds := problemKinds(Verify(doc))
	if kinds["duplicate-image-id"] != 1 {
		t.Errorf("expected one duplicate-image-id problem, got %v", kinds)
	}
}

func TestVerify_DanglingReferences(t *testing.T) {
	doc := validDocument()
	doc.AddAnnotation(Annotation{ID: 3, ImageID: 99, CategoryID: 42, TrackID: 2, BBox: [4]int{0, 0, 1, 1}, Area: 1})

	kinds := problemKinds(Verify(doc))
	if kinds["dangling-image-ref"] != 1 {
		t.Errorf("expected dangling-image-ref, got %v", kinds)
	}
	if kinds["dangling-category-ref"] != 1 {
		t.Errorf("expected dangling-category-ref, got %v", kinds)
	}
}

func TestVerify_BadArea(t *testing.T) {
	doc := validDocument()
	doc.AddAnnotation(Annotation{ID: 3, ImageID: 1, CategoryID: 1, TrackID: 2, BBox: [4]int{0, 0, 10, 10}, Area: 99})

	kinds := problemKinds(Verify(doc))
	if kinds["bad-area"] != 1 {
		t.Errorf("expected bad-area, got %v", kinds)
	}
}

func TestVerify_TrackAnnotatedTwiceInFrame(t *testing.T) {
	doc := validDocument()
	// Track 1 already holds an annotation in image 1.
	doc.AddAnnotation(Annotation{ID: 3, ImageID: 1, CategoryID: 1, TrackID: 1, BBox: [4]int{0, 0, 1, 1}, Area: 1})

	kinds := problemKinds(Verify(doc))
	if kinds["duplicate-track-in-frame"] != 1 {
		t.Errorf("expected duplicate-track-in-frame, got %v", kinds)
	}
}

func TestVerify_DanglingFrameAdjacency(t *testing.T) {
	doc := NewDocument(BuildCategories(1, []string{"pedestrian"}))
	doc.AddVideo(Video{ID: 1, FileName: "sequences/seq1"})
	// Frame 2 is absent from the document, so linking it dangles.
	doc.AddImage(Image{ID: 1, VideoID: 1, FrameID: 1, PrevFrameID: -1, NextFrameID: 2})
	doc.AddImage(Image{ID: 2, VideoID: 1, FrameID: 3, PrevFrameID: 2, NextFrameID: -1})

	kinds := problemKinds(Verify(doc))
	if kinds["dangling-frame-ref"] != 2 {
		t.Errorf("expected two dangling-frame-ref problems, got %v", kinds)
	}
}

func TestVerify_GapSpanningAdjacencyIsClean(t *testing.T) {
	doc := NewDocument(BuildCategories(1, []string{"pedestrian"}))
	doc.AddVideo(Video{ID: 1, FileName: "sequences/seq1"})
	doc.AddImage(Image{ID: 1, VideoID: 1, FrameID: 1, PrevFrameID: -1, NextFrameID: 3})
	doc.AddImage(Image{ID: 2, VideoID: 1, FrameID: 3, PrevFrameID: 1, NextFrameID: -1})

	if problems := Verify(doc); len(problems) != 0 {
		t.Errorf("links across a frame gap must verify clean, got %v", problems)
	}
}

func TestVerify_AdjacencyIsPerVideo(t *testing.T) {
	doc := NewDocument(BuildCategories(1, []string{"pedestrian"}))
	doc.AddVideo(Video{ID: 1, FileName: "sequences/seq-a"})
	doc.AddVideo(Video{ID: 2, FileName: "sequences/seq-b"})
	doc.AddImage(Image{ID: 1, VideoID: 1, FrameID: 1, PrevFrameID: -1, NextFrameID: -1})
	// Video 2 emits only frame 2; frame 1 exists in video 1 alone.
	doc.AddImage(Image{ID: 2, VideoID: 2, FrameID: 2, PrevFrameID: 1, NextFrameID: -1})

	kinds := problemKinds(Verify(doc))
	if kinds["dangling-frame-ref"] != 1 {
		t.Errorf("expected one dangling-frame-ref problem, got %v", kinds)
	}
}

func TestVerify_DanglingVideoRef(t *testing.T) {
	doc := validDocument()
	doc.AddImage(Image{ID: 3, VideoID: 42})

	kinds := problemKinds(Verify(doc))
	if kinds["dangling-video-ref"] != 1 {
		t.Errorf("expected dangling-video-ref, got %v", kinds)
	}
}
