package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/doc/transform"
)

func (c *CLI) normalizeCommand() *cobra.Command {
	var output, from string

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Collapse single-column rows and resync column widths",
		Example: `  slidekit normalize slide.json -o slide.json
  cat slide.json | slidekit normalize -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDoc(args[0], from)
			if err != nil {
				return err
			}
			tr := doc.NewTransaction(d).SetMeta(transform.MetaOrigin, transform.OriginNormalize)
			stats := transform.NormalizeRows(tr)
			if stats.Changed() {
				printSuccess("Normalized rows")
				printDetail("%d collapsed · %d widths resynced", stats.Collapsed, stats.Resynced)
			} else {
				printInfo("Already normalized")
			}
			return writeDoc(cmd.OutOrStdout(), tr.Doc(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to a file instead of stdout")
	cmd.Flags().StringVar(&from, "from", "", "input format: json (default), html, markdown")
	return cmd
}
