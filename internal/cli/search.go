package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/courtdocs/internal/archive"
	"github.com/rcliao/courtdocs/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search court decisions",
		Long: `Search by a free-text query, which is analyzed into judge, court, year and
case type criteria, or by explicit filter flags. Queries with no recognizable
criteria fall back to similarity (or keyword) search over document text.`,
		Run: runSearch,
	}
	addCriteriaFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func addCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().String("judge", "", "Filter by judge (substring, case-insensitive)")
	cmd.Flags().String("court", "", "Filter by court name (substring)")
	cmd.Flags().String("case-type", "", "Filter by case type (substring)")
	cmd.Flags().String("district", "", "Filter by district (substring)")
	cmd.Flags().String("year", "", "Filter by year (exact)")
	cmd.Flags().String("decision-type", "", "Filter by decision type (substring)")
}

func criteriaFromFlags(cmd *cobra.Command) model.SearchCriteria {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return model.SearchCriteria{
		Judge:        get("judge"),
		Court:        get("court"),
		CaseType:     get("case-type"),
		District:     get("district"),
		Year:         get("year"),
		DecisionType: get("decision-type"),
	}
}

// runQuery answers the positional query when given and the filter flags otherwise.
func runQuery(cmd *cobra.Command, args []string, svc *archive.Service) *archive.SearchResult {
	var res *archive.SearchResult
	var err error
	if q := strings.TrimSpace(strings.Join(args, " ")); q != "" {
		res, err = svc.Query(cmd.Context(), q)
	} else {
		res, err = svc.Search(cmd.Context(), criteriaFromFlags(cmd))
	}
	if err != nil {
		exitErr("search", err)
	}
	return res
}

func runSearch(cmd *cobra.Command, args []string) {
	s, svc := mustOpen()
	defer s.Close()

	res := runQuery(cmd, args, svc)

	if textOutput() {
		fmt.Printf("%d result(s), %s search\n", len(res.Documents), res.Mode)
		for _, d := range res.Documents {
			printSummary(d)
		}
		return
	}

	if len(res.Hits) > 0 {
		printJSON(res.Hits)
		return
	}
	if len(res.Documents) == 0 {
		fmt.Println("[]")
		return
	}
	printJSON(res.Documents)
}
