package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/courtdocs/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import documents from a JSON export",
		Long:  "Re-ingest documents from JSON (stdin or file) in the format produced by export --format json. Metadata is re-extracted from the text.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			exitErr("open", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		exitErr("read input", err)
	}

	var docs []model.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		exitErr("parse json", err)
	}

	s, svc := mustOpen()
	defer s.Close()

	_, stats := svc.Reingest(cmd.Context(), docs)
	fmt.Printf(`{"ok":true,"imported":%d,"invalid":%d,"failed":%d}`+"\n",
		stats.Succeeded, stats.Invalid, stats.Failed)
}
