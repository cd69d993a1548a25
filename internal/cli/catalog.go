package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/layouts"
	"github.com/matzehuels/slidekit/pkg/presets"
	"github.com/matzehuels/slidekit/pkg/render/outline"
	"github.com/matzehuels/slidekit/pkg/theme"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func (c *CLI) layoutsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layouts [id]",
		Short: "List slide layouts, or print one as a document",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var ids []string
			for _, l := range layouts.All() {
				ids = append(ids, l.ID)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				t := newTable("Category", "ID", "Name", "Description")
				for _, cat := range layouts.Categories() {
					for _, l := range cat.Layouts {
						t.Row(cat.Name, l.ID, l.Name, l.Description)
					}
				}
				fmt.Fprintln(out, t.Render())
				return nil
			}

			l, err := layouts.ByID(args[0])
			if err != nil {
				return err
			}
			d, err := l.Doc()
			if err != nil {
				return err
			}
			if asJSON {
				return writeDoc(out, d, "")
			}
			fmt.Fprintln(out, StyleTitle.Render(l.Name))
			printKeyValue(out, "ID", l.ID)
			printKeyValue(out, "Description", l.Description)
			printKeyValue(out, "Blocks", strconv.Itoa(d.ChildCount()))
			fmt.Fprintln(out)
			fmt.Fprintln(out, outline.Tree(d, outline.Options{}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as a JSON document")
	return cmd
}

func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "presets [columns]",
		Short:     "List column width presets",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"2", "3", "4"},
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := presets.Counts()
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || presets.ForColumnCount(n) == nil {
					return errors.New(errors.ErrCodeInvalidInput, "no presets for %q columns (have %v)", args[0], counts)
				}
				counts = []int{n}
			}

			t := newTable("Columns", "ID", "Label", "Widths")
			for _, n := range counts {
				for _, p := range presets.ForColumnCount(n) {
					t.Row(strconv.Itoa(n), p.ID, p.Label, formatWidths(p.Widths))
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func formatWidths(widths []float64) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strconv.FormatFloat(w, 'g', -1, 64)
	}
	return strings.Join(parts, ":")
}

func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := newTable("", "Name", "Background", "Text", "Link", "Fonts")
			for _, th := range theme.Builtin() {
				mark := " "
				if th.Name == c.cfg.Theme {
					mark = "*"
				}
				t.Row(mark, th.Name, swatch(th.BgColor), swatch(th.TextColor), swatch(th.LinkColor), fontName(th.TitleFont)+" / "+fontName(th.BodyFont))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

// swatch renders a hex color next to a block painted in it.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■") + " " + hex
}

// fontName strips the quoting and fallbacks from a CSS font stack.
func fontName(stack string) string {
	first, _, _ := strings.Cut(stack, ",")
	return strings.Trim(strings.TrimSpace(first), `'"`)
}
