// Package resources embeds the bundles stamp scaffolds from.
//
// A bundle is a directory under bundles/ addressed by a dotted name: the
// bundle "common.devfile" lives in bundles/common/devfile. Files ending in the
// template suffix are rendered, an optional __meta__.yml at the bundle root
// declares extra template data per consumer, and path segments may carry
// placeholder tokens such as project_org or sample_filter that are replaced
// when the destination path is planned.
package resources
