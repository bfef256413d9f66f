package scaffold

import (
	"io/fs"
	"path"

	"github.com/arthur-debert/stamp/pkg/errors"
)

// Node is a file or directory inside a bundle tree
type Node struct {
	fsys  fs.FS
	path  string
	isDir bool
}

// OpenNode returns the node at p in fsys.
func OpenNode(fsys fs.FS, p string) (Node, error) {
	info, err := fs.Stat(fsys, p)
	if err != nil {
		return Node{}, err
	}
	return Node{fsys: fsys, path: p, isDir: info.IsDir()}, nil
}

func (n Node) Name() string { return path.Base(n.path) }
func (n Node) Path() string { return n.path }
func (n Node) IsDir() bool  { return n.isDir }
func (n Node) IsFile() bool { return !n.isDir }

// Children lists a directory's entries sorted by name.
func (n Node) Children() ([]Node, error) {
	entries, err := fs.ReadDir(n.fsys, n.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBundleRead, "cannot list %s", n.path).WithPath(n.path)
	}
	children := make([]Node, 0, len(entries))
	for _, entry := range entries {
		children = append(children, Node{
			fsys:  n.fsys,
			path:  path.Join(n.path, entry.Name()),
			isDir: entry.IsDir(),
		})
	}
	return children, nil
}

// ReadText returns the file's full content.
func (n Node) ReadText() (string, error) {
	data, err := fs.ReadFile(n.fsys, n.path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBundleRead, "cannot read %s", n.path).WithPath(n.path)
	}
	return string(data), nil
}
