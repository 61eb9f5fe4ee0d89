package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/rzbill/armkit/pkg/catalog"
	"github.com/rzbill/armkit/pkg/cli/format"
	"github.com/rzbill/armkit/pkg/log"
	"github.com/rzbill/armkit/pkg/store"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		typeName string
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "import [--type NAME] FILE...",
		Short: "Decode resources and store snapshots of them",
		Long: `Decode each input and store a snapshot of every resource in it. A list
page stores each of its items. Storing a resource again keeps the earlier
snapshot in its history.

Inputs are decoded and stored by up to --parallel workers; the first
failure stops the import.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if parallel < 1 {
				return fmt.Errorf("--parallel must be at least 1")
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			var total atomic.Int64
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(parallel)
			for _, path := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					n, err := a.importFile(ctx, cmd, st, path, typeName)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					total.Add(int64(n))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s imported %d resources from %d files\n",
				format.StatusSymbol(true), total.Load(), len(args))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "payload type; detected when omitted")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "number of files decoded and stored at once")
	return cmd
}

func (a *app) importFile(ctx context.Context, cmd *cobra.Command, st store.Store, path, typeName string) (int, error) {
	in, err := a.decodeInput(cmd, path, typeName)
	if err != nil {
		return 0, err
	}
	if listing, ok := in.value.(catalog.Listing); ok {
		return a.storeMembers(ctx, st, in.entry, listing)
	}
	return 1, a.storeOne(ctx, st, in.entry.Name, in.value)
}

// storeMembers stores every item of a list page under the entry of a single
// item, falling back to the list entry's name.
func (a *app) storeMembers(ctx context.Context, st store.Store, list catalog.Entry, page catalog.Listing) (int, error) {
	entryName := list.Name
	if e, ok := a.catalog.ForResourceType(list.ResourceType, false); ok {
		entryName = e.Name
	}

	for i, member := range page.Members() {
		if err := a.storeOne(ctx, st, entryName, member); err != nil {
			return i, fmt.Errorf("value[%d]: %w", i, err)
		}
	}
	return page.Len(), nil
}

func (a *app) storeOne(ctx context.Context, st store.Store, entryName string, v any) error {
	rec, err := store.NewRecord(entryName, v)
	if err != nil {
		return err
	}
	if err := st.Put(ctx, rec); err != nil {
		return err
	}
	a.logger.Info("Imported resource", log.Resource(rec.ID), log.Str("entry", entryName))
	return nil
}

func newGetCmd(a *app) *cobra.Command {
	var (
		history bool
		jq      string
	)

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Print a stored resource",
		Long: `Print the latest snapshot of the resource with the given ARM ID, or
with --history a table of every stored snapshot, newest first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if history {
				recs, err := st.History(cmd.Context(), args[0])
				if err != nil {
					return notFound(args[0], err)
				}
				rows := make([][]string, 0, len(recs))
				for i, r := range recs {
					rows = append(rows, []string{
						fmt.Sprint(i),
						r.Entry,
						r.ImportedAt.Format("2006-01-02 15:04:05"),
						fmt.Sprint(len(r.Resource)),
					})
				}
				return renderTable(cmd, []string{"#", "ENTRY", "IMPORTED", "BYTES"}, rows, "No snapshots found")
			}

			rec, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return notFound(args[0], err)
			}
			if jq != "" {
				return a.printValue(cmd, rec.Resource, jq)
			}
			return a.printJSON(cmd, rec.Resource)
		},
	}

	cmd.Flags().BoolVar(&history, "history", false, "list every stored snapshot")
	cmd.Flags().StringVar(&jq, "jq", "", "print the results of a jq expression over the resource")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var resourceType string

	cmd := &cobra.Command{
		Use:   "list [--type ARMTYPE]",
		Short: "List stored resources",
		Args:  cobra.NoArgs,
		Example: `  armkit list
  armkit list --type Microsoft.SecurityInsights/incidents`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			recs, err := st.List(cmd.Context(), resourceType)
			if err != nil {
				return err
			}
			sort.Slice(recs, func(i, j int) bool {
				if recs[i].Type != recs[j].Type {
					return recs[i].Type < recs[j].Type
				}
				return recs[i].Name < recs[j].Name
			})

			rows := make([][]string, 0, len(recs))
			for _, r := range recs {
				rows = append(rows, []string{r.Name, r.Type, r.Entry, formatAge(r.ImportedAt)})
			}
			return renderTable(cmd, []string{"NAME", "TYPE", "ENTRY", "AGE"}, rows, "No resources found")
		},
	}

	cmd.Flags().StringVarP(&resourceType, "type", "t", "", "only list resources of this ARM type")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a stored resource and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return notFound(args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s deleted %s\n", format.StatusSymbol(true), args[0])
			return nil
		},
	}
}

func notFound(id string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("resource %s not found in the snapshot store", id)
	}
	return err
}
