package scaffold

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/stamp/pkg/style"
	"github.com/charmbracelet/lipgloss"
)

// PlanOptions controls RenderPlan
type PlanOptions struct {
	Color bool
	// Diff appends a unified diff under each conflicting file.
	Diff bool
}

// RenderPlan writes a human readable summary of list, one entry per line:
//
//	new      file  /work/acme/demo/galaxy.yml
//	conflict file  /work/acme/demo/README.md
func RenderPlan(w io.Writer, list FileList, opts PlanOptions) error {
	paint := func(s lipgloss.Style, text string) string {
		if !opts.Color {
			return text
		}
		return s.Render(text)
	}

	if len(list) == 0 {
		_, err := fmt.Fprintln(w, paint(style.MutedStyle, "nothing to do, destination is up to date"))
		return err
	}

	for _, entry := range list {
		status, st := "new", style.NewEntryStyle
		if entry.HasConflict() {
			status, st = "conflict", style.ConflictEntryStyle
		}
		line := fmt.Sprintf("%s %s %s",
			paint(st, fmt.Sprintf("%-8s", status)),
			fmt.Sprintf("%-4s", entry.Kind()),
			paint(style.PathStyle, entry.Path))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}

		if opts.Diff {
			if diff := entry.Diff(); diff != "" {
				for _, l := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
					if _, err := fmt.Fprintln(w, "    "+l); err != nil {
						return err
					}
				}
			}
		}
	}

	conflicts := len(list.Conflicts())
	summary := fmt.Sprintf("%d entries, %d conflicting", len(list), conflicts)
	_, err := fmt.Fprintln(w, paint(style.MutedStyle, summary))
	return err
}
