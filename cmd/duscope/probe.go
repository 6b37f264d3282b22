package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/duscope/duscope/pkg/duscope/errclass"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Re-test accessibility of OS-protected locations",
	Long: `Probe checks which of the curated OS-protected locations are readable
right now. Useful after granting the terminal broader disk access.`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	results := errclass.New().Probe()
	if len(results) == 0 {
		fmt.Println("no protected locations known for this OS")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range results {
		status := "readable"
		if !r.Readable {
			status = "denied"
		}
		fmt.Fprintf(w, "%s\t%s\n", status, r.Path)
	}
	return w.Flush()
}
