package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/render"
	"github.com/matzehuels/slidekit/pkg/render/outline"
)

// Outline output formats.
const (
	outlineTree = "tree"
	outlineDOT  = "dot"
	outlineSVG  = "svg"
	outlinePDF  = "pdf"
	outlinePNG  = "png"
)

var outlineFormats = []string{outlineTree, outlineDOT, outlineSVG, outlinePDF, outlinePNG}

type outlineOpts struct {
	format    string
	output    string
	from      string
	positions bool
	preview   int
	scale     float64
}

func (c *CLI) outlineCommand() *cobra.Command {
	opts := outlineOpts{format: outlineTree, scale: 2}

	cmd := &cobra.Command{
		Use:   "outline <file>",
		Short: "Show the block structure of a slide",
		Example: `  slidekit outline slide.json --positions
  slidekit outline deck.md -f svg -o outline.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDoc(args[0], opts.from)
			if err != nil {
				return err
			}
			o := outline.Options{Positions: opts.positions, Preview: opts.preview}
			out := cmd.OutOrStdout()

			switch opts.format {
			case outlineTree:
				fmt.Fprintln(out, outline.Tree(d, o))
				return nil
			case outlineDOT:
				return writeBytes(out, []byte(outline.ToDOT(d, o)), opts.output)
			case outlineSVG, outlinePDF, outlinePNG:
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unknown outline format %q (one of %v)", opts.format, outlineFormats)
			}

			prog := newProgress(c.Logger)
			ctx := cmd.Context()
			data, err := outline.RenderSVG(ctx, outline.ToDOT(d, o))
			if err != nil {
				return err
			}
			switch opts.format {
			case outlinePDF:
				data, err = render.ToPDF(ctx, data)
			case outlinePNG:
				data, err = render.ToPNG(ctx, data, opts.scale)
			}
			if err != nil {
				return err
			}
			prog.done("Rendered " + opts.format)
			return writeBytes(out, data, opts.output)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: tree, dot, svg, pdf, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.from, "from", "", "input format: json (default), html, markdown")
	cmd.Flags().BoolVarP(&opts.positions, "positions", "p", false, "show block positions")
	cmd.Flags().IntVar(&opts.preview, "preview", 0, "text preview length in runes (negative hides text)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	return cmd
}
