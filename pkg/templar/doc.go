// Package templar renders bundle templates with text/template.
//
// Templates see the scaffold's template data as a map, so fields are
// referenced as {{ .namespace }}. Unknown keys fail the render instead of
// producing "<no value>". Besides the builtins, templates can use toJson,
// toYaml, lower, upper, replace and default.
package templar
