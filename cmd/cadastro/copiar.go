package main

import (
	"strings"

	"github.com/spf13/cobra"

	"cadastrobot/pkg/ui"
)

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copiar <texto>",
		Short: "Copy text to the system clipboard",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notifier := ui.NewNotifier(terminalDisplay{out: cmd.OutOrStdout()}, a.cfg.NotificationTTL, a.log)
			defer notifier.Stop()
			return ui.NewClipboard(notifier, a.log).Copy(cmd.Context(), 0, strings.Join(args, " "))
		},
	}
}
