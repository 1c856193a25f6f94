package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "List the values available for each search filter",
		Run:   runFilters,
	}

	RootCmd.AddCommand(cmd)
}

func runFilters(cmd *cobra.Command, args []string) {
	s, svc := mustOpen()
	defer s.Close()

	opts, err := svc.Filters(cmd.Context())
	if err != nil {
		exitErr("filters", err)
	}

	if textOutput() {
		keys := make([]string, 0, len(opts))
		for k := range opts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %s\n", k, strings.Join(opts[k], ", "))
		}
		return
	}
	printJSON(opts)
}
