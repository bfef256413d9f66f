// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: Destination filesystems for scaffold tests

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stamp/pkg/filesystem"
	"github.com/arthur-debert/stamp/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // afero memory filesystem
	EnvIsolated                  // Real filesystem in a temp directory
)

// TestEnvironment is a destination root on a filesystem plus an output sink
type TestEnvironment struct {
	Root   string
	FS     types.FS
	Output *RecordingOutput
	Type   EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:      t,
		Type:   envType,
		Output: NewRecordingOutput(),
	}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/work"
		env.FS = filesystem.NewMemory()
		if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
			t.Fatalf("Failed to create root: %v", err)
		}
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	return env
}

// Path joins rel onto the root.
func (e *TestEnvironment) Path(rel string) string {
	return filepath.Join(e.Root, filepath.FromSlash(rel))
}

// WriteFile creates rel (and its parents) with content.
func (e *TestEnvironment) WriteFile(rel, content string) {
	e.t.Helper()
	p := e.Path(rel)
	if err := e.FS.MkdirAll(filepath.Dir(p), 0755); err != nil {
		e.t.Fatalf("Failed to create parent of %s: %v", p, err)
	}
	if err := e.FS.WriteFile(p, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", p, err)
	}
}

// Mkdir creates rel and its parents.
func (e *TestEnvironment) Mkdir(rel string) {
	e.t.Helper()
	if err := e.FS.MkdirAll(e.Path(rel), 0755); err != nil {
		e.t.Fatalf("Failed to create %s: %v", rel, err)
	}
}

// ReadFile returns the content of rel, failing the test if it is missing.
func (e *TestEnvironment) ReadFile(rel string) string {
	e.t.Helper()
	data, err := e.FS.ReadFile(e.Path(rel))
	if err != nil {
		e.t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}

// Exists reports whether rel exists.
func (e *TestEnvironment) Exists(rel string) bool {
	_, err := e.FS.Stat(e.Path(rel))
	return err == nil
}

// IsDir reports whether rel exists and is a directory.
func (e *TestEnvironment) IsDir(rel string) bool {
	info, err := e.FS.Stat(e.Path(rel))
	return err == nil && info.IsDir()
}
