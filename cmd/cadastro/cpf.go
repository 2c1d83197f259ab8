package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cadastrobot/pkg/models"
	"cadastrobot/pkg/validation"
)

var errInvalid = errors.New("invalid")

func newCPFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpf <numero>",
		Short: "Validate a CPF and print it masked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			masked := validation.MaskCPF(args[0])
			if !validation.ValidCPF(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "❌ %s: %s\n", masked, validation.MsgCPFInvalido)
				return errInvalid
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s\n", masked)
			return nil
		},
	}
}

func newMaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "mascara <cpf|celular> <valor>",
		Short:     "Apply the CPF or phone input mask",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{models.FieldCPF, models.FieldCelular},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case models.FieldCPF:
				masked, state := validation.LiveCPF(args[1])
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", masked, state)
			case models.FieldCelular:
				fmt.Fprintln(cmd.OutOrStdout(), validation.MaskPhone(args[1]))
			default:
				return fmt.Errorf("unknown mask %q: use cpf or celular", args[0])
			}
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	var form models.RegistrationForm

	cmd := &cobra.Command{
		Use:   "validar",
		Short: "Validate a whole registration form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			errs := validation.ValidateForm(form)
			if errs.OK() {
				fmt.Fprintln(cmd.OutOrStdout(), "✅ Formulário válido")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), validation.MsgCorrigirErros)
			for _, field := range errs.Fields() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", field, errs[field])
			}
			return errInvalid
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Nome, models.FieldNome, "", "full name")
	f.StringVar(&form.CPF, models.FieldCPF, "", "CPF")
	f.StringVar(&form.Celular, models.FieldCelular, "", "mobile phone, (xx) xxxxx-xxxx")
	f.StringVar(&form.DataNascimento, models.FieldDataNascimento, "", "birth date")
	f.StringVar(&form.TipoVinculo, models.FieldTipoVinculo, models.VinculoRegistrado, "registrado or terceirizado")
	f.StringVar(&form.ValidadeCNH, models.FieldValidadeCNH, "", "CNH expiry date")
	f.StringVar(&form.ValidadeCurso, models.FieldValidadeCurso, "", "passenger course expiry date")
	return cmd
}
