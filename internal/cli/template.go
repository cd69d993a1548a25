package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidekit/pkg/deck"
	slideio "github.com/matzehuels/slidekit/pkg/io"
	"github.com/matzehuels/slidekit/pkg/store"
	"github.com/matzehuels/slidekit/pkg/theme"
)

func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"tpl"},
		Short:   "Manage stored slide templates",
		Long: `Manage slide templates in the configured store.

The store backend is set in the [store] section of the config file or with
SLIDEKIT_STORE_BACKEND (memory, file, redis, mongo).`,
	}

	cmd.AddCommand(c.templatePushCommand())
	cmd.AddCommand(c.templatePullCommand())
	cmd.AddCommand(c.templateListCommand())
	cmd.AddCommand(c.templateDeleteCommand())
	return cmd
}

// withStore opens the configured store for the duration of fn.
func (c *CLI) withStore(ctx context.Context, fn func(*store.Store) error) error {
	st, err := store.Open(ctx, c.cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()
	c.Logger.Debug("opened store", "backend", st.Backend().Name())
	return fn(st)
}

func (c *CLI) templatePushCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "push <id> <file>",
		Short: "Store a template JSON file, or a Markdown/HTML document as a one-slide template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, path := args[0], args[1]
			t, err := c.loadTemplate(path, from)
			if err != nil {
				return err
			}
			return c.withStore(cmd.Context(), func(st *store.Store) error {
				if err := st.Put(cmd.Context(), id, t); err != nil {
					return err
				}
				printSuccess("Stored %s", StyleHighlight.Render(id))
				printDetail("%d slides · theme %s · %s backend", len(t.Slides), t.Theme.Name, st.Backend().Name())
				printNextStep("Fetch it with", "slidekit template pull "+id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "input format: json (default), html, markdown")
	return cmd
}

// loadTemplate reads a template file, or wraps a single document into one.
func (c *CLI) loadTemplate(path, from string) (*slideio.SlidesTemplate, error) {
	format, err := detectFormat(path, from)
	if err != nil {
		return nil, err
	}
	if format == formatJSON {
		return slideio.ImportJSON(path)
	}
	d, err := readDoc(path, format)
	if err != nil {
		return nil, err
	}
	th, ok := theme.ByName(c.cfg.Theme)
	if !ok {
		th = theme.Default()
	}
	dk, err := deck.New(th, d)
	if err != nil {
		return nil, err
	}
	return dk.Template(), nil
}

func (c *CLI) templatePullCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pull <id>",
		Short: "Print a stored template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(st *store.Store) error {
				t, err := st.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeTemplate(cmd, t, output)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func (c *CLI) templateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(st *store.Store) error {
				ids, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(ids) == 0 {
					printInfo("No templates in the %s store", st.Backend().Name())
					return nil
				}
				t := newTable("ID", "Slides", "Theme")
				for _, id := range ids {
					tpl, err := st.Get(cmd.Context(), id)
					if err != nil {
						c.Logger.Warn("skipping unreadable template", "id", id, "err", err)
						continue
					}
					t.Row(id, strconv.Itoa(len(tpl.Slides)), tpl.Theme.Name)
				}
				fmt.Fprintln(cmd.OutOrStdout(), t.Render())
				return nil
			})
		},
	}
}

func (c *CLI) templateDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a stored template",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(st *store.Store) error {
				if err := st.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				printSuccess("Deleted %s", args[0])
				return nil
			})
		},
	}
}
