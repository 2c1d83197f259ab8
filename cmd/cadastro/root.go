package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cadastrobot/config"
	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/ui"
)

type app struct {
	cfg     config.Config
	log     logger.ILogger
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cadastro",
		Short: "Driver registration helpers: CPF, masks, files and search",
		Long: `cadastro exposes the checks the registration bot runs on each field.

Examples:
  cadastro cpf 111.444.777-35          # Validate a CPF
  cadastro mascara celular 11987654321 # Apply the phone mask
  cadastro arquivo cnh.pdf             # Check an upload before sending
  cadastro buscar "Maria"              # Search drivers on the server
  cadastro validade 2026-05-01         # Document expiry status`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.cfg = config.Load()
			if a.verbose {
				a.log = logger.New("cadastro", a.cfg.LoggerLevel)
			} else {
				a.log = logger.Nop()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log to stdout")

	root.AddCommand(
		newCPFCmd(),
		newMaskCmd(),
		newValidateCmd(),
		newFileCmd(),
		newSearchCmd(a),
		newPayslipCmd(a),
		newCopyCmd(a),
		newExpiryCmd(),
	)
	return root
}

// terminalDisplay prints notifications. A printed line cannot be taken
// back, so removal is a no-op.
type terminalDisplay struct {
	out io.Writer
}

func (d terminalDisplay) Show(_ context.Context, _ int64, text string) (ui.Banner, error) {
	_, err := fmt.Fprintln(d.out, text)
	return terminalBanner{}, err
}

type terminalBanner struct{}

func (terminalBanner) Remove() error { return nil }
