package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, svc := mustOpen()
	defer s.Close()

	stats, err := svc.Stats(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}

	if textOutput() {
		fmt.Printf("database:   %s (%s)\n", stats.DBPath, humanize.Bytes(uint64(stats.DBSizeBytes)))
		fmt.Printf("documents:  %s (%s processed, %s failed, %s invalid)\n",
			humanize.Comma(int64(stats.TotalDocuments)),
			humanize.Comma(int64(stats.ProcessedDocuments)),
			humanize.Comma(int64(stats.FailedDocuments)),
			humanize.Comma(int64(stats.InvalidDocuments)))
		fmt.Printf("chunks:     %s (%s embedded)\n",
			humanize.Comma(int64(stats.TotalChunks)),
			humanize.Comma(int64(stats.EmbeddedChunks)))
		if stats.Embedder != "" {
			fmt.Printf("embedder:   %s\n", stats.Embedder)
		}
		return
	}
	printJSON(stats)
}
