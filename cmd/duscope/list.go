package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/duscope/duscope/pkg/duscope/session"
	"github.com/duscope/duscope/pkg/duscope/types"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "Print a directory's child sizes and exit",
	Long: `List runs one scan session to completion and prints the children
size-descending, with errored entries marked and clustered last.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, "output the final snapshot as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}
	defer eng.close()

	path, err := eng.targetPath(args)
	if err != nil {
		return err
	}

	sess := session.New(session.Options{
		Path:     path,
		Cache:    eng.cache,
		Lister:   eng.lister,
		Sizer:    eng.sizer,
		Partial:  eng.partial,
		Interval: eng.cfg.AggregateInterval,
	})

	if err := sess.Start(cmd.Context()); err != nil {
		var listErr *types.ListError
		if errors.As(err, &listErr) {
			fmt.Fprintf(os.Stderr, "cannot list %s: %v\n", listErr.Path, listErr.Err)
		}
		return err
	}
	if err := sess.Wait(cmd.Context()); err != nil {
		return err
	}

	snap := sess.Snapshot()
	if listJSON {
		return printJSON(snap)
	}
	printPlain(snap)
	return nil
}

func printJSON(snap types.Snapshot) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func printPlain(snap types.Snapshot) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, row := range snap.Entries {
		size := types.FormatSize(row.Outcome.Bytes)
		if row.Outcome.IsError() {
			size = "(no access)"
		}
		marker := ""
		if row.Entry.Kind == types.KindDirectory {
			marker = "/"
		}
		fmt.Fprintf(w, "%s\t%s%s\n", size, row.Entry.Name, marker)
	}
	_ = w.Flush()

	fmt.Fprintf(os.Stdout, "\ntotal %s", types.FormatSize(snap.TotalBytes))
	if snap.HasErrors {
		fmt.Fprint(os.Stdout, "  (some entries were inaccessible)")
	}
	fmt.Fprintln(os.Stdout)
}
