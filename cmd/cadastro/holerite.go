package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cadastrobot/pkg/api"
	"cadastrobot/pkg/validation"
)

func newPayslipCmd(a *app) *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "holerite <motorista-id> <ano> <mes> <arquivo>",
		Short: "Upload a driver's payslip for a month",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, year, month, path := args[0], args[1], args[2], args[3]

			info, err := fileInfo(path)
			if err != nil {
				return err
			}
			if err := validation.ValidateFile(info); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "🚫 "+validation.AlertMessage(err))
				return errInvalid
			}

			if server == "" {
				server = a.cfg.ServerBaseURL
			}
			client, err := api.NewClient(server, a.cfg.HTTPTimeout, a.log)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			message, err := client.UploadPayslip(cmd.Context(), id, year, month, api.Attachment{File: info, Body: f})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ "+message)
			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "registration server URL (default SERVER_BASE_URL)")
	return cmd
}
