// Package scaffold is the resource-tree scaffolding engine.
//
// A scaffold runs in two phases. Walker.Collect walks one or more bundles and
// plans every entry against the destination, producing a FileList in which
// each DestinationFile is either new or conflicting (entries already
// identical on disk are dropped, which makes re-running idempotent).
// Copier.Copy then applies the list in order: conflicting destinations are
// removed, directories created and files written.
//
// Between the two phases a Policy decides whether conflicts may be
// overwritten:
//
//	list, err := walker.Collect([]string{"common.devfile"}, "common.devfile", dest, data)
//	if err != nil {
//		return err
//	}
//	policy := scaffold.Policy{Mode: scaffold.ModeFromFlags(force, overwrite, noOverwrite), Prompter: prompter}
//	return policy.Apply(list, copier)
//
// Destination paths are planned by a PathPlanner, which replaces placeholder
// tokens (project_org, sample_filter, ...) with template data values and drops
// the template suffix. Bundles may carry a metadata file declaring extra
// template data per consumer; see MetadataLoader.
package scaffold
