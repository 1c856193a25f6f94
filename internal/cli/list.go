package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/courtdocs/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		Run:   runList,
	}

	cmd.Flags().String("status", "", "Filter by status: processed or failed")
	cmd.Flags().IntP("limit", "l", 20, "Max results (0 for all)")
	cmd.Flags().Bool("ids-only", false, "Only output document IDs")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	s, svc := mustOpen()
	defer s.Close()

	docs, err := svc.List(cmd.Context(), status, limit)
	if err != nil {
		exitErr("list", err)
	}

	if idsOnly {
		for _, d := range docs {
			fmt.Println(d.ID)
		}
		return
	}
	if textOutput() {
		for _, d := range docs {
			printSummary(d)
		}
		return
	}
	printJSON(docs)
}

func printSummary(d model.Document) {
	fmt.Printf("%s  %-12s  %-30s  %s\n",
		d.ID,
		orDash(d.Metadata.Get(model.FieldCaseNumber)),
		orDash(d.Metadata.Get(model.FieldCourtName)),
		orDash(d.Metadata.Get(model.FieldJudge)))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
