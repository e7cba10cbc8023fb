// Package commands implements the CLI commands for objdelta.
package commands

import (
	"context"

	"github.com/objdelta/objdelta/internal/app"
	"github.com/objdelta/objdelta/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for objdelta.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "objdelta",
		Short:         "Rebuild and compare object files as sources change",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
