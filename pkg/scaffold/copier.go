package scaffold

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/types"
)

// Copier applies a FileList to the destination filesystem
type Copier struct {
	fs       types.FS
	output   types.Output
	fileMode fs.FileMode
	dirMode  fs.FileMode
}

// NewCopier creates a Copier writing files with fileMode and creating
// directories with dirMode.
func NewCopier(fsys types.FS, output types.Output, fileMode, dirMode fs.FileMode) *Copier {
	return &Copier{fs: fsys, output: output, fileMode: fileMode, dirMode: dirMode}
}

// Copy applies entries strictly in list order. A conflicting destination is
// removed first, whatever its type, then the directory is created or the
// file written. The first failure aborts the copy.
func (c *Copier) Copy(list FileList) error {
	logger := logging.GetLogger("scaffold.copier")
	done := logging.LogOperationStart(logger, "copy")
	defer done()

	for _, entry := range list {
		if entry.HasConflict() {
			c.output.Debug("removing existing " + entry.Path)
			if err := c.fs.RemoveAll(entry.Path); err != nil {
				return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", entry.Path).WithPath(entry.Path)
			}
		}

		if entry.Source.IsDir() {
			c.output.Debug("creating directory " + entry.Path)
			if err := c.fs.MkdirAll(entry.Path, c.dirMode); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", entry.Path).WithPath(entry.Path)
			}
			continue
		}

		parent := filepath.Dir(entry.Path)
		if err := c.fs.MkdirAll(parent, c.dirMode); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", parent).WithPath(parent)
		}
		c.output.Debug("writing " + entry.Path)
		if err := c.fs.WriteFile(entry.Path, []byte(entry.Content()), c.fileMode); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", entry.Path).WithPath(entry.Path)
		}
	}

	logger.Debug().Int("entries", len(list)).Msg("Copied")
	return nil
}
