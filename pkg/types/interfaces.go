package types

import (
	"io/fs"
)

// FS is the destination filesystem the scaffolding engine reads and writes.
// All paths are absolute host paths.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
}

// Output is the leveled, user-facing message sink.
// Critical is expected to terminate the process after printing.
type Output interface {
	Debug(msg string)
	Info(msg string)
	Hint(msg string)
	Note(msg string)
	Warning(msg string)
	Error(msg string)
	Critical(msg string)
}

// Prompter asks the user a yes/no question on the interactive channel.
type Prompter interface {
	AskYesNo(question string) (bool, error)
}
