package commands

import (
	"github.com/objdelta/objdelta/internal/app"
	"github.com/objdelta/objdelta/internal/engine/scheduler"
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the project and rebuild the target on source changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			jsonLogs, _ := cmd.Flags().GetBool("json")
			interval, _ := cmd.Flags().GetDuration("interval")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				ConfigPath: configPath,
				Interval:   interval,
				JSONLogs:   jsonLogs,
			})
		},
	}
	cmd.Flags().Duration("interval", scheduler.DefaultTickInterval, "Scheduler tick interval")
	return cmd
}
