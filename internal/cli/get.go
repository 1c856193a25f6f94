package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/courtdocs/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show a stored document",
		Args:  cobra.ExactArgs(1),
		Run:   runGet,
	}

	cmd.Flags().Bool("no-text", false, "Omit the document text")

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	noText, _ := cmd.Flags().GetBool("no-text")

	s, svc := mustOpen()
	defer s.Close()

	doc, err := svc.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("get", err)
	}
	if noText {
		doc.Text = ""
	}

	if textOutput() {
		printDocument(doc)
		return
	}
	printJSON(doc)
}

var shownFields = []model.Field{
	model.FieldCourtName, model.FieldCaseNumber, model.FieldJudge, model.FieldClerk,
	model.FieldApplicant, model.FieldCaseType, model.FieldDistrict, model.FieldDecisionType,
	model.FieldYear, model.FieldDate,
}

func printDocument(d *model.Document) {
	fmt.Printf("%s  %s  [%s]\n", d.ID, d.Filename, d.Status)
	for _, f := range shownFields {
		if v := d.Metadata.Get(f); v != "" {
			fmt.Printf("  %-16s %s\n", f, v)
		}
	}
	if d.Text != "" {
		fmt.Printf("\n%s\n", d.Text)
	}
}
