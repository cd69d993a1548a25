// Package cli implements the slidekit command-line interface.
//
// Commands read slide documents as JSON snapshots, HTML or Markdown and
// write JSON snapshots back. Status lines go to stderr so that document
// output can be piped.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slidekit/pkg/buildinfo"
	"github.com/matzehuels/slidekit/pkg/config"
)

// appName is the application name used for directories and display.
const appName = "slidekit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	envFiles   []string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		envFiles: []string{".env"},
		cfg:      config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Config returns the loaded configuration.
func (c *CLI) Config() *config.Config { return c.cfg }

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "slidekit edits block-based slide documents",
		Long: `slidekit is the toolbox around a block-based slide editor: it resolves drop
targets, rewrites documents for drag-and-drop, keeps rows normalized and
manages slide templates.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/slidekit/config.toml)")

	root.AddCommand(c.normalizeCommand())
	root.AddCommand(c.dropCommand())
	root.AddCommand(c.edgesCommand())
	root.AddCommand(c.outlineCommand())
	root.AddCommand(c.layoutsCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.templateCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath, c.envFiles...)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.SetFormatter(cfg.Log.Formatter())
	// --verbose already lowered the level; the config only raises it.
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil && c.Logger.GetLevel() > lvl {
		c.Logger.SetLevel(lvl)
	}
	c.Logger.Debug("config loaded", "theme", cfg.Theme, "store", cfg.Store.Backend)
	return nil
}

// stdinName is the file argument that reads from standard input.
const stdinName = "-"

func openInput(name string) (io.ReadCloser, error) {
	if name == stdinName {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}
