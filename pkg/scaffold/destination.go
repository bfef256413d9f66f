package scaffold

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/aymanbagabas/go-udiff"
)

// DestinationFile is one planned filesystem entry: a bundle node and the
// path it will be written to.
type DestinationFile struct {
	Source    Node
	Path      string
	Templated bool

	content  string
	exists   bool
	compared bool
	existing string
	conflict string
}

// newDestinationFile inspects the destination and classifies the entry.
// content is the rendered (or raw) text for files and ignored for dirs.
func newDestinationFile(fsys types.FS, source Node, dest, content string, templated bool) (*DestinationFile, error) {
	df := &DestinationFile{
		Source:    source,
		Path:      dest,
		Templated: templated,
		content:   content,
	}

	info, err := fsys.Stat(dest)
	switch {
	case err == nil:
		df.exists = true
	case isNotExist(err):
		return df, nil
	default:
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot inspect %s", dest).WithPath(dest)
	}

	switch {
	case source.IsDir() && !info.IsDir():
		df.conflict = fmt.Sprintf("%s already exists and is a file!", dest)
	case source.IsFile() && info.IsDir():
		df.conflict = fmt.Sprintf("%s already exists and is a directory!", dest)
	case source.IsFile():
		current, err := fsys.ReadFile(dest)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", dest).WithPath(dest)
		}
		df.existing = string(current)
		df.compared = true
		if df.existing != content {
			df.conflict = fmt.Sprintf("%s already exists", dest)
		}
	}
	return df, nil
}

// isNotExist also covers a parent path component being a regular file.
func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, syscall.ENOTDIR)
}

// Conflict describes why the destination differs, "" when it does not.
func (d *DestinationFile) Conflict() string { return d.conflict }

// HasConflict reports whether the destination exists and differs.
func (d *DestinationFile) HasConflict() bool { return d.conflict != "" }

// Exists reports whether something was found at the destination.
func (d *DestinationFile) Exists() bool { return d.exists }

// NeedsWrite is false only when the destination already matches the source.
func (d *DestinationFile) NeedsWrite() bool {
	return !d.exists || d.conflict != ""
}

// Content is the text that will be written for file entries.
func (d *DestinationFile) Content() string { return d.content }

// Kind is "dir" or "file".
func (d *DestinationFile) Kind() string {
	if d.Source.IsDir() {
		return "dir"
	}
	return "file"
}

// Diff returns a unified diff from the current destination content to the
// planned content. It is empty unless both sides are files that differ.
func (d *DestinationFile) Diff() string {
	if !d.HasConflict() || !d.compared {
		return ""
	}
	return udiff.Unified(d.Path+" (current)", d.Path+" (planned)", d.existing, d.content)
}

// FileList is the ordered plan for one scaffold operation
type FileList []*DestinationFile

// HasConflicts reports whether any entry conflicts with the destination.
func (l FileList) HasConflicts() bool {
	for _, d := range l {
		if d.HasConflict() {
			return true
		}
	}
	return false
}

// Conflicts returns the conflicting entries in plan order.
func (l FileList) Conflicts() FileList {
	var out FileList
	for _, d := range l {
		if d.HasConflict() {
			out = append(out, d)
		}
	}
	return out
}
