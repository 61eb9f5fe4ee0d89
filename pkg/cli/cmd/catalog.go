package cmd

import (
	"fmt"
	"strings"

	"github.com/rzbill/armkit/pkg/catalog"
	"github.com/rzbill/armkit/pkg/cli/format"
	"github.com/spf13/cobra"
)

func newEnumsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "enums [PROVIDER]",
		Short: "List open enums and their known values",
		Long: `List every open enum and the values this build knows. Payloads may
carry other values; they decode without error and are kept as is.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  armkit enums
  armkit enums securityinsights`,
		RunE: func(cmd *cobra.Command, args []string) error {
			providers, err := selectProviders(args)
			if err != nil {
				return err
			}

			var rows [][]string
			for _, p := range providers {
				for _, d := range p.Enums.All() {
					rows = append(rows, []string{p.Name, d.Name, strings.Join(d.Values, ", ")})
				}
			}
			return renderTable(cmd, []string{"PROVIDER", "ENUM", "KNOWN VALUES"}, rows, "No enums found")
		},
	}
}

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds [PROVIDER]",
		Short: "List polymorphic types and their variants",
		Long: `List every closed union with its discriminator field and the tags of
its registered variants. Any other tag fails to decode.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			providers, err := selectProviders(args)
			if err != nil {
				return err
			}

			var rows [][]string
			for _, p := range providers {
				for _, u := range p.Unions {
					rows = append(rows, []string{p.Name, u.Name, u.Discriminator, strings.Join(u.Tags, ", ")})
				}
			}
			return renderTable(cmd, []string{"PROVIDER", "UNION", "DISCRIMINATOR", "TAGS"}, rows, "No polymorphic types found")
		},
	}
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the payload types accepted by --type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, e := range a.catalog.Entries() {
				shape := "resource"
				if e.List {
					shape = "list"
				}
				rows = append(rows, []string{e.Name, shape, e.ResourceType})
			}
			return renderTable(cmd, []string{"NAME", "SHAPE", "RESOURCE TYPE"}, rows, "No types found")
		},
	}
}

func selectProviders(args []string) ([]catalog.Provider, error) {
	all := catalog.Providers()
	if len(args) == 0 {
		return all, nil
	}

	var names []string
	for _, p := range all {
		if strings.EqualFold(p.Name, args[0]) || strings.EqualFold(p.Namespace, args[0]) {
			return []catalog.Provider{p}, nil
		}
		names = append(names, p.Name)
	}
	return nil, fmt.Errorf("unknown provider %q, want one of: %s", args[0], strings.Join(names, ", "))
}

func renderTable(cmd *cobra.Command, headers []string, rows [][]string, empty string) error {
	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), empty)
		return nil
	}
	out, err := format.Table(headers, rows)
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
