package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"signup-service/pkg/validation"
)

var errInvalidCPF = errors.New("one or more CPFs are invalid")

func newCPFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpf <digits>...",
		Short: "Check CPF numbers (11 digits, no punctuation)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			allValid := true
			for _, cpf := range args {
				status := "valid"
				if !validation.ValidateCPF(cpf) {
					status = "invalid"
					allValid = false
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", cpf, status)
			}
			if !allValid {
				return errInvalidCPF
			}
			return nil
		},
	}
}
