package scaffold

import (
	stderrors "errors"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/resources"
	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
)

// Target pairs a bundle with the directory it is scaffolded into
type Target struct {
	Bundle string
	Dest   string
}

// WalkerOptions configures a Walker
type WalkerOptions struct {
	// Bundles holds the bundle trees, addressed by resources.Path.
	Bundles fs.FS
	// FS is the destination filesystem.
	FS       types.FS
	Output   types.Output
	Renderer Renderer
	Planner  PathPlanner
	MetaFile string
	// SkipDirs are directory names excluded with their subtree.
	SkipDirs []string
	// SkipFiles are doublestar patterns matched against file names.
	SkipFiles []string
}

// Walker turns bundles into a FileList against a destination
type Walker struct {
	opts     WalkerOptions
	meta     *MetadataLoader
	skipDirs map[string]bool
	logger   zerolog.Logger
}

// NewWalker creates a Walker
func NewWalker(opts WalkerOptions) *Walker {
	skipDirs := make(map[string]bool, len(opts.SkipDirs))
	for _, d := range opts.SkipDirs {
		skipDirs[d] = true
	}
	return &Walker{
		opts: opts,
		meta: &MetadataLoader{
			Bundles:  opts.Bundles,
			MetaFile: opts.MetaFile,
			Renderer: opts.Renderer,
		},
		skipDirs: skipDirs,
		logger:   logging.GetLogger("scaffold.walker"),
	}
}

// Collect plans every bundle into dest, in the given order.
func (w *Walker) Collect(bundles []string, consumerID, dest string, data Data) (FileList, error) {
	targets := make([]Target, 0, len(bundles))
	for _, b := range bundles {
		targets = append(targets, Target{Bundle: b, Dest: dest})
	}
	return w.CollectTargets(targets, consumerID, data)
}

// CollectTargets plans each bundle into its own destination. Entries are
// ordered by target, then pre-order within the bundle tree, so a directory
// always precedes its contents. Entries already identical on disk are left
// out.
func (w *Walker) CollectTargets(targets []Target, consumerID string, data Data) (FileList, error) {
	done := logging.LogOperationStart(w.logger, "collect")
	defer done()

	var list FileList
	for _, target := range targets {
		entries, err := w.collectBundle(target, consumerID, data)
		if err != nil {
			return nil, err
		}
		list = append(list, entries...)
	}

	w.logger.Debug().
		Int("entries", len(list)).
		Bool("conflicts", list.HasConflicts()).
		Msg("Collected paths")
	return list, nil
}

func (w *Walker) collectBundle(target Target, consumerID string, data Data) (FileList, error) {
	root := resources.Path(target.Bundle)
	node, err := OpenNode(w.opts.Bundles, root)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrBundleNotFound, "bundle %s does not exist", target.Bundle).
				WithDetail("bundle", target.Bundle)
		}
		return nil, errors.Wrapf(err, errors.ErrBundleRead, "cannot open bundle %s", target.Bundle).
			WithDetail("bundle", target.Bundle)
	}
	if !node.IsDir() {
		return nil, errors.Newf(errors.ErrBundleRead, "bundle %s is not a directory", target.Bundle).
			WithDetail("bundle", target.Bundle)
	}

	bundleData, err := w.meta.Load(root, consumerID, data)
	if err != nil {
		return nil, err
	}

	w.opts.Output.Debug("processing bundle " + target.Bundle + " into " + target.Dest)

	var list FileList
	if err := w.walk(node, "", target.Dest, bundleData, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// walk visits dir's children pre-order. rel is dir's path relative to the
// bundle root.
func (w *Walker) walk(dir Node, rel, dest string, data Data, list *FileList) error {
	children, err := dir.Children()
	if err != nil {
		return err
	}

	for _, child := range children {
		if w.skip(child) {
			w.logger.Trace().Str("path", child.Path()).Msg("Skipping")
			continue
		}

		childRel := path.Join(rel, child.Name())
		planned, templated := w.opts.Planner.Plan(childRel, data)
		destPath := filepath.Join(dest, filepath.FromSlash(planned))

		var content string
		if child.IsFile() {
			content, err = child.ReadText()
			if err != nil {
				return err
			}
			if templated {
				content, err = w.opts.Renderer.Render(child.Path(), content, data)
				if err != nil {
					return err
				}
			}
		} else {
			templated = false
		}

		entry, err := newDestinationFile(w.opts.FS, child, destPath, content, templated)
		if err != nil {
			return err
		}

		if entry.HasConflict() {
			w.opts.Output.Warning(entry.Conflict())
			if diff := entry.Diff(); diff != "" {
				w.logger.Debug().Str("path", destPath).Str("diff", diff).Msg("Conflicting content")
			}
		}

		if entry.NeedsWrite() {
			*list = append(*list, entry)
		} else {
			w.opts.Output.Debug("skipping identical " + destPath)
		}

		// Recurse even into existing dirs so nested conflicts are found.
		if child.IsDir() {
			if err := w.walk(child, childRel, dest, data, list); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Walker) skip(n Node) bool {
	if n.IsDir() {
		return w.skipDirs[n.Name()]
	}
	if n.Name() == w.opts.MetaFile {
		return true
	}
	for _, pattern := range w.opts.SkipFiles {
		if ok, _ := doublestar.Match(pattern, n.Name()); ok {
			return true
		}
	}
	return false
}
