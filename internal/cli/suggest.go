package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/courtdocs/internal/query"
)

func init() {
	cmd := &cobra.Command{
		Use:   "suggest [partial query]",
		Short: "Suggest example queries and check what a query would match on",
		Run:   runSuggest,
	}

	RootCmd.AddCommand(cmd)
}

func runSuggest(cmd *cobra.Command, args []string) {
	q := strings.Join(args, " ")
	suggestions := query.Suggestions(q)

	if textOutput() {
		for _, s := range suggestions {
			fmt.Println(s)
		}
		if q != "" {
			fmt.Printf("\ntranslated: %s\n", query.TranslateLegalTerms(q))
		}
		return
	}

	printJSON(map[string]any{
		"suggestions": suggestions,
		"validation":  query.ValidateQuery(q),
		"translated":  query.TranslateLegalTerms(q),
	})
}
