package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/stamp/pkg/cobrax/topics"
	"github.com/arthur-debert/stamp/pkg/project"
	"github.com/arthur-debert/stamp/pkg/resources"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var renderer topics.Renderer = &topics.PlainRenderer{}
			if a.color() {
				renderer = topics.NewGlamourRenderer()
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), renderer.Render(catalogMarkdown(), ".md"))
			return err
		},
	}
}

// catalogMarkdown describes the scaffold kinds and bundles as markdown.
func catalogMarkdown() string {
	var b strings.Builder

	b.WriteString("# Scaffolds\n\n")
	for _, kind := range project.Kinds() {
		fmt.Fprintf(&b, "* `%s`\n", kind)
	}

	b.WriteString("\n# Bundles\n\n| Bundle | Description |\n|---|---|\n")
	for _, bundle := range resources.Catalog {
		fmt.Fprintf(&b, "| `%s` | %s |\n", bundle.Name, bundle.Description)
	}
	return b.String()
}
