package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/stamp/pkg/errors"
)

// EnvHome is consulted when the OS cannot report a home directory.
const EnvHome = "HOME"

// GetHomeDirectory returns the user's home directory, falling back to $HOME
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrap(err, errors.ErrPathInvalid, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome replaces a leading ~ or ~/ with the home directory. ~user is
// left alone.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		return path, nil
	}

	home, err := GetHomeDirectory()
	if err != nil {
		return "", err
	}
	if len(path) == 1 {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// Normalize expands environment variables and ~, then makes path absolute
// and clean. An empty path is the working directory.
func Normalize(path string) (string, error) {
	if path == "" {
		path = "."
	}

	expanded, err := ExpandHome(os.ExpandEnv(path))
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathInvalid, "invalid path %s", path).WithPath(path)
	}
	return filepath.Clean(abs), nil
}

// CollectionRoot appends namespace/name when root is a
// collections/ansible_collections directory, the layout ansible-galaxy
// installs into. Any other root is returned unchanged.
func CollectionRoot(root, namespace, name string) string {
	if filepath.Base(root) == "ansible_collections" && filepath.Base(filepath.Dir(root)) == "collections" {
		return filepath.Join(root, namespace, name)
	}
	return root
}

// LastTwo joins the last two elements of path with a dot.
func LastTwo(path string) string {
	var kept []string
	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if part != "" {
			kept = append(kept, part)
		}
	}
	if len(kept) > 2 {
		kept = kept[len(kept)-2:]
	}
	return strings.Join(kept, ".")
}
