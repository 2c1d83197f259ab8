package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cadastrobot/pkg/ui"
	"cadastrobot/pkg/validation"
)

func newExpiryCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "validade <data>",
		Short: "Show whether a document date is expired or expiring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := validation.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", validation.MsgDataInvalida, err)
			}

			status := ui.DocumentStatusWithin(t, time.Now(), days)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ui.FormatDate(t), status)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "dias", ui.ExpiryWarningDays, "days ahead that count as expiring")
	return cmd
}
