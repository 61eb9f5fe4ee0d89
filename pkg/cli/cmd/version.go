package cmd

import (
	"fmt"
	"sort"

	"github.com/rzbill/armkit/pkg/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the Armkit version information",
		Long:  `Display version information about the armkit binary and the ARM API versions its models follow.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, version.Info())

			apis := version.APIVersions()
			namespaces := make([]string, 0, len(apis))
			for ns := range apis {
				namespaces = append(namespaces, ns)
			}
			sort.Strings(namespaces)
			for _, ns := range namespaces {
				fmt.Fprintf(out, "  %s %s\n", ns, apis[ns])
			}
			return nil
		},
	}
}
