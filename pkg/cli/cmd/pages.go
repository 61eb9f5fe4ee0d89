package cmd

import (
	"fmt"

	"github.com/rzbill/armkit/pkg/catalog"
	"github.com/rzbill/armkit/pkg/cli/format"
	"github.com/rzbill/armkit/pkg/pager"
	"github.com/rzbill/armkit/pkg/store"
	"github.com/spf13/cobra"
)

func newPagesCmd(a *app) *cobra.Command {
	var (
		typeName    string
		dir         string
		importItems bool
	)

	cmd := &cobra.Command{
		Use:   "pages --type NAME [--dir DIR] FIRST",
		Short: "Walk a paged listing saved as files",
		Long: `Walk a listing whose pages are saved as JSON files, starting at FIRST
and following each page's nextLink. A nextLink is mapped to a file in DIR
by its $skipToken value, or else by the last element of its URL path.

The walk stops at the first page without a nextLink, or fails after
max_pages pages.`,
		Args: cobra.ExactArgs(1),
		Example: `  # page1.json links to https://management.azure.com/...?$skipToken=page2
  armkit pages --type incidentList --dir ./pages page1.json

  # Store every item of every page
  armkit pages --type alertRuleList --dir ./pages page1.json --import`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := a.resolveEntry(typeName)
			if err != nil {
				return err
			}
			if !entry.List {
				return fmt.Errorf("%s is not a list type", entry.Name)
			}

			var st store.Store
			if importItems {
				if st, err = a.openStore(); err != nil {
					return err
				}
				defer st.Close()
			}

			decode := func(data []byte) (catalog.Listing, error) {
				v, err := entry.Decode(data)
				if err != nil {
					return nil, err
				}
				return v.(catalog.Listing), nil
			}
			p := pager.New(pager.FileFetcher(dir, args[0], decode),
				pager.WithLogger(a.logger),
				pager.WithMaxPages(a.cfg.MaxPages))

			out := cmd.OutOrStdout()
			pages, items, stored := 0, 0, 0
			for p.More() {
				page, err := p.NextPage(cmd.Context())
				if err != nil {
					return err
				}
				pages++
				items += page.Len()
				fmt.Fprintf(out, "page %d: %d items\n", pages, page.Len())

				if st != nil {
					n, err := a.storeMembers(cmd.Context(), st, entry, page)
					if err != nil {
						return err
					}
					stored += n
				}
			}

			fmt.Fprintf(out, "%s %d items in %d pages\n", format.StatusSymbol(true), items, pages)
			if st != nil {
				fmt.Fprintf(out, "stored %d resources\n", stored)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "list type, e.g. securityinsights/incidentList")
	cmd.Flags().StringVar(&dir, "dir", ".", "directory holding the page files")
	cmd.Flags().BoolVar(&importItems, "import", false, "store every item in the snapshot store")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
