package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/schema"
)

func (c *CLI) edgesCommand() *cobra.Command {
	var (
		target     int
		sourceType string
		from       string
	)

	cmd := &cobra.Command{
		Use:     "edges <file>",
		Short:   "List the edges of a block that accept a dragged block type",
		Example: `  slidekit edges slide.json --target 7 --source-type image`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, ok := schema.ParseType(sourceType)
			if !ok || st == schema.Doc || st == schema.Text {
				return errors.New(errors.ErrCodeInvalidInput, "unknown block type %q", sourceType)
			}
			d, err := readDoc(args[0], from)
			if err != nil {
				return err
			}
			info, ok := dnd.InfoAt(d, target)
			if !ok {
				return errors.New(errors.ErrCodeInvalidPosition, "no block starts at %d", target)
			}
			allowed := dnd.AllowedEdges(info, st, c.cfg.Policy)
			c.Logger.Debug("resolved target", "type", info.Type, "parent", info.ParentType, "siblings", info.ParentChildCount)
			fmt.Fprintln(cmd.OutOrStdout(), allowed)
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "position of the block hovered over")
	cmd.Flags().StringVar(&sourceType, "source-type", "", "type of the dragged block, e.g. paragraph, image, row")
	cmd.Flags().StringVar(&from, "from", "", "input format: json (default), html, markdown")
	cmd.MarkFlagRequired("target")
	cmd.MarkFlagRequired("source-type")
	return cmd
}
