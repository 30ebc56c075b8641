// Package cli implements signupctl, an offline companion to signup-service.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// NewRootCmd builds the signupctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "signupctl",
		Short:         "Tools for the signup service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCPFCmd(), newVersionCmd())
	return root
}

// Execute runs signupctl with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
