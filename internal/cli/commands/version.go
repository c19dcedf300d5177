package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display omopcdm version information and the registered catalogs.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "omopcdm v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "OMOP CDM catalogs: %s\n", strings.Join(catalog.List(), ", "))
		},
	}
}
