package testutil

import (
	"io/fs"
	"path"
	"testing/fstest"
)

// BundleFS builds a bundle tree from slash separated paths and contents.
// Parent directories are implied; a path ending in "/" creates an empty
// directory.
func BundleFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for p, content := range files {
		if p[len(p)-1] == '/' {
			fsys[path.Clean(p)] = &fstest.MapFile{Mode: fs.ModeDir | 0755}
			continue
		}
		fsys[p] = &fstest.MapFile{Data: []byte(content), Mode: 0644}
	}
	return fsys
}
