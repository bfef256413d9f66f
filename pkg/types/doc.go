// Package types defines the small interfaces shared across stamp:
// the destination filesystem, the leveled output sink and the
// interactive prompt. Implementations live in pkg/filesystem,
// pkg/output and pkg/ui/confirmations.
package types
