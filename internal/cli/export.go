package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/courtdocs/internal/export"
	"github.com/rcliao/courtdocs/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [query]",
		Short: "Export documents as XLSX or JSON",
		Long:  "Export search results, or every document when no query or filter is given. JSON exports include the text and can be re-imported.",
		Run:   runExport,
	}

	cmd.Flags().String("as", export.FormatXLSX, "Export format: xlsx or json")
	cmd.Flags().StringP("out", "o", "", "Output file (default: courtdocs.<format>; - for stdout)")
	addCriteriaFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	as, _ := cmd.Flags().GetString("as")
	out, _ := cmd.Flags().GetString("out")

	s, svc := mustOpen()
	defer s.Close()

	var docs []model.Document
	if len(args) == 0 && !criteriaFromFlags(cmd).HasStructured() {
		all, err := svc.ExportAll(cmd.Context())
		if err != nil {
			exitErr("export", err)
		}
		docs = all
	} else {
		docs = runQuery(cmd, args, svc).Documents
	}

	b, contentType, err := export.Render(as, docs)
	if err != nil {
		exitErr("export", err)
	}

	if out == "-" {
		os.Stdout.Write(b)
		return
	}
	if out == "" {
		out = "courtdocs." + export.FormatXLSX
		if strings.HasPrefix(contentType, "application/json") {
			out = "courtdocs." + export.FormatJSON
		}
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		exitErr("write", err)
	}
	fmt.Printf(`{"ok":true,"documents":%d,"file":%q}`+"\n", len(docs), out)
}
