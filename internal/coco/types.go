// Package coco models the COCO-style annotation document the converter
// emits: top-level images, annotations, categories and videos arrays
// cross-referenced by integer ids.
package coco

// Image is one frame of one sequence. The id is unique across the whole
// document; frame_id restarts per video. prev_frame_id and next_frame_id
// name the nearest frame of the same video that is present in the images
// array, or -1 at the boundaries of a sequence, so temporal readers can
// walk adjacency without ever hitting a frame the document omits.
type Image struct {
	ID          int    `json:"id"`
	FileName    string `json:"file_name"`
	FrameID     int    `json:"frame_id"`
	PrevFrameID int    `json:"prev_frame_id"`
	NextFrameID int    `json:"next_frame_id"`
	VideoID     int    `json:"video_id"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// Annotation is one bounding box. BBox is [left, top, width, height] in
// pixels; Area is always width * height. TrackID is unique across the
// whole document, not just within one video.
type Annotation struct {
	ID         int    `json:"id"`
	ImageID    int    `json:"image_id"`
	CategoryID int    `json:"category_id"`
	TrackID    int    `json:"track_id"`
	BBox       [4]int `json:"bbox"`
	Area       int    `json:"area"`
	IsCrowd    int    `json:"iscrowd"`
}

// Category is one taxonomy class.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Video is one source sequence, named by its path relative to the dataset
// root (e.g. "sequences/uav0000086_00000_v").
type Video struct {
	ID       int    `json:"id"`
	FileName string `json:"file_name"`
}

// Document is the full output file. Array order is insertion order;
// converter output is therefore deterministic for a fixed input.
type Document struct {
	Images      []Image      `json:"images"`
	Annotations []Annotation `json:"annotations"`
	Categories  []Category   `json:"categories"`
	Videos      []Video      `json:"videos"`
}

// NewDocument creates an empty document carrying the fixed category table.
func NewDocument(categories []Category) *Document {
	return &Document{Categories: categories}
}

// AddImage appends an image.
func (d *Document) AddImage(img Image) {
	d.Images = append(d.Images, img)
}

// AddAnnotation appends an annotation.
func (d *Document) AddAnnotation(ann Annotation) {
	d.Annotations = append(d.Annotations, ann)
}

// AddVideo appends a video.
func (d *Document) AddVideo(v Video) {
	d.Videos = append(d.Videos, v)
}

// BuildCategories assigns ids startID, startID+1, ... to names in order.
func BuildCategories(startID int, names []string) []Category {
	cats := make([]Category, 0, len(names))
	for i, name := range names {
		cats = append(cats, Category{ID: startID + i, Name: name})
	}
	return cats
}
