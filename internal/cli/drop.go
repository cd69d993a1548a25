package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/doc/transform"
	"github.com/matzehuels/slidekit/pkg/editor"
	"github.com/matzehuels/slidekit/pkg/errors"
)

type dropOpts struct {
	source, target int
	edge           string
	output, from   string
	noNormalize    bool
}

func (c *CLI) dropCommand() *cobra.Command {
	var opts dropOpts

	cmd := &cobra.Command{
		Use:   "drop <file>",
		Short: "Drag a block onto an edge of another block",
		Long: `Drag the block starting at --source onto an edge of the block starting at
--target, exactly as the editor would on mouse release. Positions are the
document offsets printed by "slidekit outline --positions".

A drop the schema does not allow leaves the document unchanged.`,
		Example: `  slidekit drop slide.json --source 12 --target 0 --edge right`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edge, err := dnd.ParseEdge(opts.edge)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidEdge, err, "--edge")
			}
			d, err := readDoc(args[0], opts.from)
			if err != nil {
				return err
			}

			editorOpts := []editor.Option{editor.WithLogger(c.Logger)}
			if opts.noNormalize {
				editorOpts = append(editorOpts, editor.WithoutNormalization())
			}
			ed, err := editor.New(d, editorOpts...)
			if err != nil {
				return err
			}

			source, ok := dnd.InfoAt(d, opts.source)
			if !ok {
				return errors.New(errors.ErrCodeInvalidPosition, "no block starts at source %d", opts.source)
			}
			target, ok := dnd.InfoAt(d, opts.target)
			if !ok {
				return errors.New(errors.ErrCodeInvalidPosition, "no block starts at target %d", opts.target)
			}

			allowed := dnd.AllowedEdges(target, source.Type, c.cfg.Policy)
			if !allowed.Has(edge) {
				printWarning("%s does not accept a %s on %s (allowed: %s)", target.Type, source.Type, edge, allowed)
				return writeDoc(cmd.OutOrStdout(), ed.Doc(), opts.output)
			}

			rw, err := ed.Drop(dnd.Drop{Source: source, Target: target, Edge: edge})
			switch {
			case transform.IsRejected(err):
				printWarning("Drop rejected: %v", err)
			case err != nil:
				return err
			default:
				printSuccess("Dropped %s on %s of %s", source.Type, edge, target.Type)
				printDetail("rewrite: %s · %d transactions", rw.Case, ed.Version())
			}
			return writeDoc(cmd.OutOrStdout(), ed.Doc(), opts.output)
		},
	}

	cmd.Flags().IntVar(&opts.source, "source", 0, "position of the dragged block")
	cmd.Flags().IntVar(&opts.target, "target", 0, "position of the block dropped on")
	cmd.Flags().StringVar(&opts.edge, "edge", "", "edge of the target: top, right, bottom, left")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the document to a file instead of stdout")
	cmd.Flags().StringVar(&opts.from, "from", "", "input format: json (default), html, markdown")
	cmd.Flags().BoolVar(&opts.noNormalize, "no-normalize", false, "skip row normalization after the drop")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("target")
	cmd.MarkFlagRequired("edge")
	return cmd
}
