package commands

import (
	"github.com/objdelta/objdelta/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [target]",
		Short: "Build and compare a single object, then exit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			configPath, _ := cmd.Flags().GetString("config")
			jsonLogs, _ := cmd.Flags().GetBool("json")
			return c.app.Diff(cmd.Context(), app.DiffOptions{
				ConfigPath: configPath,
				Target:     target,
				JSONLogs:   jsonLogs,
			})
		},
	}
}
