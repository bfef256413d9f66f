package scaffold

import (
	"fmt"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/types"
)

// Mode is the caller's overwrite intent
type Mode int

const (
	// ModeInteractive asks before overwriting.
	ModeInteractive Mode = iota
	// ModeOverwrite overwrites without asking (--overwrite or --force).
	ModeOverwrite
	// ModeNoOverwrite refuses to overwrite anything.
	ModeNoOverwrite
)

func (m Mode) String() string {
	switch m {
	case ModeOverwrite:
		return "overwrite"
	case ModeNoOverwrite:
		return "no-overwrite"
	default:
		return "interactive"
	}
}

// ModeFromFlags maps the CLI flags to a Mode. --no-overwrite wins.
func ModeFromFlags(force, overwrite, noOverwrite bool) Mode {
	switch {
	case noOverwrite:
		return ModeNoOverwrite
	case force || overwrite:
		return ModeOverwrite
	default:
		return ModeInteractive
	}
}

// Decision is what to do with a FileList
type Decision int

const (
	DecisionCopy Decision = iota
	DecisionPrompt
	DecisionRefuse
)

// OverwriteQuestion is asked before overwriting in interactive mode.
const OverwriteQuestion = "Files in the destination directory will be overwritten. Do you want to proceed?"

// Decide applies the overwrite policy. Without conflicts the list is always
// copied since nothing existing gets replaced.
func Decide(mode Mode, list FileList) Decision {
	if !list.HasConflicts() {
		return DecisionCopy
	}
	switch mode {
	case ModeNoOverwrite:
		return DecisionRefuse
	case ModeOverwrite:
		return DecisionCopy
	default:
		return DecisionPrompt
	}
}

// Applier is implemented by Copier.
type Applier interface {
	Copy(list FileList) error
}

// Policy gates a copy behind the overwrite decision
type Policy struct {
	Mode     Mode
	Prompter types.Prompter
	// Program names the command to re-run in refusal messages.
	Program string
}

// Apply copies list when the policy allows it. Refusals, including a "no"
// answer, return an ErrOverwriteRefused error explaining how to continue.
func (p Policy) Apply(list FileList, applier Applier) error {
	switch Decide(p.Mode, list) {
	case DecisionRefuse:
		return errors.New(errors.ErrOverwriteRefused, fmt.Sprintf(
			"The flag `--no-overwrite` restricts overwriting.\n"+
				"The destination directory contains files that can be overwritten.\n"+
				"Please re-run %s with --overwrite to continue.", p.program())).
			WithDetail("conflicts", len(list.Conflicts()))
	case DecisionPrompt:
		if p.Prompter == nil {
			return errors.New(errors.ErrInternal, "overwrite confirmation needs a prompter")
		}
		yes, err := p.Prompter.AskYesNo(OverwriteQuestion)
		if err != nil {
			return err
		}
		if !yes {
			return errors.New(errors.ErrOverwriteRefused, fmt.Sprintf(
				"The destination directory contains files that will be overwritten. "+
					"Please re-run %s with --overwrite to continue.", p.program()))
		}
	}
	return applier.Copy(list)
}

func (p Policy) program() string {
	if p.Program == "" {
		return "stamp"
	}
	return p.Program
}
