package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"proguard-codegen/internal/diagnostic"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer owns the output root for one generation run. It tracks which class
// claimed each artifact path, so two distinct classes whose names sanitize
// to the same path are reported instead of silently overwriting each other.
type Writer struct {
	root   string
	owners map[string]string // relative artifact path -> original class name
	diags  *diagnostic.Diagnostics
}

// NewWriter creates a Writer rooted at root.
func NewWriter(root string, diags *diagnostic.Diagnostics) *Writer {
	return &Writer{
		root:   root,
		owners: make(map[string]string),
		diags:  diags,
	}
}

// Reset removes any previous output root and recreates it empty, so stale
// artifacts from renamed or removed mapping entries never linger.
func (w *Writer) Reset() error {
	if err := os.RemoveAll(w.root); err != nil {
		return fmt.Errorf("clearing output directory %s: %w", w.root, err)
	}

	if err := os.MkdirAll(w.root, dirPerm); err != nil {
		return fmt.Errorf("creating output directory %s: %w", w.root, err)
	}

	return nil
}

// Write puts one rendered artifact below the root, creating parent
// directories as needed. It returns false when the path was already claimed
// by another class; the collision is recorded as a diagnostic error and the
// earlier artifact is kept intact.
func (w *Writer) Write(rec ClassRecord, content []byte) (bool, error) {
	if owner, claimed := w.owners[rec.RelPath]; claimed {
		w.diags.AddError("output-path-collision",
			fmt.Sprintf("classes %s and %s both sanitize to this path; %s was not generated",
				owner, rec.OriginalName, rec.OriginalName),
			rec.OriginalName, rec.RelPath)

		return false, nil
	}

	outputPath := filepath.Join(w.root, rec.RelPath)

	if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", rec.RelPath, err)
	}

	// O_EXCL guards against anything outside this run's claim table having
	// created the file, e.g. a concurrent run sharing the output root.
	f, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if os.IsExist(err) {
			w.diags.AddError("output-path-collision",
				fmt.Sprintf("artifact already exists; %s was not generated", rec.OriginalName),
				rec.OriginalName, rec.RelPath)

			return false, nil
		}

		return false, fmt.Errorf("creating file %s: %w", rec.RelPath, err)
	}

	w.owners[rec.RelPath] = rec.OriginalName

	if _, err := f.Write(content); err != nil {
		f.Close()

		return false, fmt.Errorf("writing file %s: %w", rec.RelPath, err)
	}

	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing file %s: %w", rec.RelPath, err)
	}

	return true, nil
}
