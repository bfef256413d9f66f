// Package testutil provides utilities for testing stamp components.
//
// Key components:
//   - TestEnvironment: a destination filesystem (in memory or a temp dir)
//     with helpers to seed and inspect files
//   - RecordingOutput: an Output that keeps every message by level
//   - MockPrompter: a scripted yes/no prompter
//   - BundleFS: builds an fstest.MapFS bundle tree from inline file contents
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Use EnvIsolated when behaviour depends on the real OS filesystem
//   - All test data should be defined inline, not in external files
package testutil
