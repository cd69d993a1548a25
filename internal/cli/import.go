package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidekit/pkg/deck"
	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/errors"
	slideio "github.com/matzehuels/slidekit/pkg/io"
	"github.com/matzehuels/slidekit/pkg/schema"
	"github.com/matzehuels/slidekit/pkg/theme"
)

type importOpts struct {
	output   string
	from     string
	template bool
	split    bool
	theme    string
}

func (c *CLI) importCommand() *cobra.Command {
	var opts importOpts

	cmd := &cobra.Command{
		Use:   "import <file.md|file.html>",
		Short: "Convert Markdown or HTML into a slide document or template",
		Long: `Convert Markdown or HTML into a slide document.

With --template the result is wrapped into a slides template. --split starts
a new slide at every level-one heading.`,
		Example: `  slidekit import notes.md -o slide.json
  slidekit import talk.md --template --split -o talk.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)

			format, err := detectFormat(args[0], opts.from)
			if err != nil {
				return err
			}
			if format == formatJSON {
				return errors.New(errors.ErrCodeInvalidFormat, "%s: import reads html or markdown", args[0])
			}
			d, err := readDoc(args[0], format)
			if err != nil {
				return err
			}
			if !opts.template {
				prog.done("Imported " + filepath.Base(args[0]))
				return writeDoc(cmd.OutOrStdout(), d, opts.output)
			}

			th := theme.Default()
			name := opts.theme
			if name == "" {
				name = c.cfg.Theme
			}
			if t, ok := theme.ByName(name); ok {
				th = t
			} else {
				return errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", name)
			}

			slides := []*doc.Node{d}
			if opts.split {
				slides = splitSlides(d)
			}
			dk, err := deck.New(th, slides...)
			if err != nil {
				return err
			}
			prog.done("Imported " + filepath.Base(args[0]))
			printDetail("%d slides · theme %s", dk.Len(), th.Name)
			return writeTemplate(cmd, dk.Template(), opts.output)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")
	cmd.Flags().StringVar(&opts.from, "from", "", "input format: html or markdown (default from extension)")
	cmd.Flags().BoolVar(&opts.template, "template", false, "wrap the document into a slides template")
	cmd.Flags().BoolVar(&opts.split, "split", false, "with --template, start a slide at every level-one heading")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "template theme (default from config)")
	return cmd
}

// splitSlides cuts a document before every level-one heading after the
// first block.
func splitSlides(d *doc.Node) []*doc.Node {
	var (
		slides  []*doc.Node
		current []*doc.Node
	)
	for _, b := range d.Content {
		if isTitle(b) && len(current) > 0 {
			slides = append(slides, doc.NewDoc(current...))
			current = nil
		}
		current = append(current, b)
	}
	if len(current) > 0 {
		slides = append(slides, doc.NewDoc(current...))
	}
	return slides
}

func isTitle(n *doc.Node) bool {
	lvl, _ := n.Attrs.Int(schema.AttrLevel)
	return n.Type == schema.Heading && lvl == 1
}

func writeTemplate(cmd *cobra.Command, t *slideio.SlidesTemplate, output string) error {
	if output == "" {
		return slideio.WriteJSON(t, cmd.OutOrStdout())
	}
	if !strings.EqualFold(filepath.Ext(output), ".json") {
		printWarning("%s does not end in .json", output)
	}
	if err := slideio.ExportJSON(t, output); err != nil {
		return err
	}
	printFile(output)
	return nil
}
