// Package project defines what stamp can scaffold and runs it.
//
// Every category (init collection, add resource devfile, add plugin filter,
// ...) is a Scaffold variant with typed options. Resolve builds one from the
// flat options the CLI collected, decoding them with mapstructure and
// validating them with struct tags:
//
//	s, err := project.Resolve(project.KindInitCollection, map[string]interface{}{
//		"collection": "acme.widgets",
//		"path":       "~/src/widgets",
//	})
//
// A Runner then plans the scaffold into a Job (bundles, destinations,
// template data), prepares the destination, collects the file list and
// applies it through the overwrite policy.
package project
