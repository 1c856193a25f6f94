package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/courtdocs/internal/archive"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ingest [paths...]",
		Short: "Ingest court decisions",
		Long:  "Ingest .txt decisions, .zip archives of them, or directories containing either.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runIngest,
	}

	cmd.Flags().BoolP("quiet", "q", false, "Only print the summary")

	RootCmd.AddCommand(cmd)
}

func runIngest(cmd *cobra.Command, args []string) {
	quiet, _ := cmd.Flags().GetBool("quiet")

	s, svc := mustOpen()
	defer s.Close()

	results, stats, err := svc.IngestPaths(cmd.Context(), args)
	if err != nil {
		exitErr("ingest", err)
	}

	if textOutput() {
		if !quiet {
			for _, r := range results {
				printResultLine(r)
			}
		}
		fmt.Printf("scanned %d, stored %d (%d invalid), failed %d\n",
			stats.Scanned, stats.Succeeded, stats.Invalid, stats.Failed)
		return
	}

	out := struct {
		Results []archive.FileResult `json:"results,omitempty"`
		Stats   archive.BatchStats   `json:"stats"`
	}{Stats: stats}
	if !quiet {
		out.Results = results
	}
	printJSON(out)
}

func printResultLine(r archive.FileResult) {
	switch {
	case r.Err != "":
		fmt.Printf("FAIL  %s: %s\n", r.Path, r.Err)
	case !r.Valid:
		fmt.Printf("WARN  %s -> %s (missing essential fields)\n", r.Path, r.DocumentID)
	default:
		fmt.Printf("OK    %s -> %s\n", r.Path, r.DocumentID)
	}
}
