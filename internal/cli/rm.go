package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm [id...]",
		Short: "Delete documents",
		Long:  "Delete documents with their metadata and chunks. Irreversible.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	s, svc := mustOpen()
	defer s.Close()

	for _, id := range args {
		if err := svc.Delete(cmd.Context(), id); err != nil {
			exitErr("rm "+id, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q}`+"\n", id)
	}
}
