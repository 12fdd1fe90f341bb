package visdrone

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const (
	// SequencesDir and AnnotationsDir are the two fixed subdirectories of
	// a VisDrone dataset root.
	SequencesDir   = "sequences"
	AnnotationsDir = "annotations"
)

var (
	// ErrMissingRoot means the dataset root or its sequences/ subdirectory
	// does not exist.
	ErrMissingRoot = errors.New("dataset root not found")

	// ErrNoSequences means the sequences/ directory holds no sequence
	// subdirectories at all.
	ErrNoSequences = errors.New("no sequences found")
)

// Sequence is one discovered video sequence: its frame-image directory and
// the annotation file that describes it.
type Sequence struct {
	Name           string
	ImageDir       string
	AnnotationPath string
}

// DiscoverSequences enumerates the sequence directories under
// root/sequences in lexicographic order and pairs each with its
// annotations/<name>.txt file. Sequences without an annotation file are
// returned separately in missing; the caller decides whether that skips
// the sequence or aborts the run.
func DiscoverSequences(root string) (sequences []Sequence, missing []string, err error) {
	info, statErr := os.Stat(root)
	if statErr != nil || !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingRoot, root)
	}

	seqDir := filepath.Join(root, SequencesDir)
	entries, readErr := os.ReadDir(seqDir)
	if readErr != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingRoot, seqDir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoSequences, seqDir)
	}
	sort.Strings(names)

	for _, name := range names {
		annPath := filepath.Join(root, AnnotationsDir, name+".txt")
		if _, err := os.Stat(annPath); err != nil {
			missing = append(missing, name)
			continue
		}
		sequences = append(sequences, Sequence{
			Name:           name,
			ImageDir:       filepath.Join(seqDir, name),
			AnnotationPath: annPath,
		})
	}

	return sequences, missing, nil
}
