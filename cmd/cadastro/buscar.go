package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cadastrobot/pkg/api"
	"cadastrobot/pkg/search"
)

func newSearchCmd(a *app) *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "buscar <termo>",
		Short: "Search drivers by name or CPF on the registration server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if server == "" {
				server = a.cfg.ServerBaseURL
			}
			client, err := api.NewClient(server, a.cfg.HTTPTimeout, a.log)
			if err != nil {
				return err
			}

			result := search.NewWidget(client, a.log).Search(cmd.Context(), args[0])
			if result.Kind == search.ResultCleared {
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), search.RenderText(result, client.DriverURL))
			if result.Kind == search.ResultEmpty || result.Kind == search.ResultFailed {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return result.Err
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "registration server URL (default SERVER_BASE_URL)")
	return cmd
}
