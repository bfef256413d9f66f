package project

import (
	"io"
	"os"

	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/scaffold"
)

// RunOptions are the overwrite and preview flags shared by init and add
type RunOptions struct {
	Force       bool
	Overwrite   bool
	NoOverwrite bool
	// DryRun prints the plan and stops before anything is written.
	DryRun bool
	// Diff adds unified diffs for conflicting files to the dry run plan.
	Diff bool
	// PlanOut receives the dry run plan, stdout when nil.
	PlanOut io.Writer
	Color   bool
	// Program is named in refusal messages, e.g. "stamp add".
	Program string
}

// Runner executes scaffolds against an Env
type Runner struct {
	env *Env
}

func NewRunner(env *Env) *Runner {
	return &Runner{env: env}
}

// Run plans s, collects its file list and applies it under the overwrite
// policy derived from opts.
func (r *Runner) Run(s Scaffold, opts RunOptions) error {
	logger := logging.GetLogger("project.runner")
	logger.Debug().Str("kind", string(s.Kind())).Bool("dry_run", opts.DryRun).Msg("Running scaffold")

	job, err := s.Plan(r.env)
	if err != nil {
		return err
	}

	if job.Prepare != nil {
		if err := job.Prepare(r.env, opts); err != nil {
			return err
		}
	}

	cfg := r.env.Config
	walker := scaffold.NewWalker(scaffold.WalkerOptions{
		Bundles:   r.env.Bundles,
		FS:        r.env.FS,
		Output:    r.env.Output,
		Renderer:  r.env.Renderer,
		Planner:   scaffold.NewPathPlanner(cfg.Templates.Suffix),
		MetaFile:  cfg.Templates.MetaFile,
		SkipDirs:  cfg.Walker.SkipDirs,
		SkipFiles: cfg.Walker.SkipFiles,
	})

	list, err := walker.CollectTargets(job.Targets, job.ConsumerID, job.Data)
	if err != nil {
		return err
	}

	if opts.DryRun {
		out := opts.PlanOut
		if out == nil {
			out = os.Stdout
		}
		return scaffold.RenderPlan(out, list, scaffold.PlanOptions{Color: opts.Color, Diff: opts.Diff})
	}

	copier := scaffold.NewCopier(r.env.FS, r.env.Output, cfg.Permissions.FileMode(), cfg.Permissions.DirMode())
	policy := scaffold.Policy{
		Mode:     scaffold.ModeFromFlags(opts.Force, opts.Overwrite, opts.NoOverwrite),
		Prompter: r.env.Prompter,
		Program:  opts.Program,
	}
	if err := policy.Apply(list, copier); err != nil {
		return err
	}

	if job.Finish != nil {
		if err := job.Finish(r.env); err != nil {
			return err
		}
	}

	r.env.Output.Note(job.Success)
	return nil
}
