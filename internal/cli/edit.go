package cli

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slidekit/pkg/editor"
	"github.com/matzehuels/slidekit/pkg/errors"
)

func (c *CLI) editCommand() *cobra.Command {
	var from, output string

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Rearrange the blocks of a slide interactively",
		Long: `Open an interactive outline of a slide document. Pick a block up with
space, walk to a target with the arrow keys and drop it with enter. Rows are
normalized after every drop, as in the editor. Press w to save.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDoc(args[0], from)
			if err != nil {
				return err
			}
			path, err := savePath(args[0], from, output)
			if err != nil {
				return err
			}
			m, err := newEditModel(path, d, c.cfg.Policy, editor.WithLogger(c.Logger))
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(*editModel); ok && fm.dirty {
				printWarning("Unsaved changes to %s discarded", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "input format: json (default), html, markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to save to (default: the input, or <name>.json for html and markdown)")
	return cmd
}

// savePath picks where the editor writes the document. HTML and Markdown
// inputs are never overwritten with JSON.
func savePath(input, from, output string) (string, error) {
	if output != "" {
		return output, nil
	}
	if input == stdinName {
		return "", errors.New(errors.ErrCodeInvalidInput, "edit needs --output when reading stdin")
	}
	format, err := detectFormat(input, from)
	if err != nil {
		return "", err
	}
	if format == formatJSON {
		return input, nil
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".json", nil
}
