package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gocable/internal/nbr"
	"github.com/spf13/cobra"
)

var standardsCmd = &cobra.Command{
	Use:   "standards [QUERY | ID]",
	Short: "Browse the electrical standards reference",
	Long: `List the standards in the reference catalogue, search them by title
or subtitle, or show one in full by its identifier.

Examples:
  gocable standards
  gocable standards lightning
  gocable standards nbr5410`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStandards,
}

func init() {
	rootCmd.AddCommand(standardsCmd)
}

func runStandards(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	query := ""
	if len(args) == 1 {
		query = args[0]
		if s, ok := nbr.StandardByID(query); ok {
			printHeader(w, s.Title)
			fmt.Fprintf(w, "  %s\n\n", s.Subtitle)
			fmt.Fprintf(w, "  %s\n\n", s.Summary)
			printSection(w, "TOPICS")
			for _, t := range s.Topics {
				fmt.Fprintf(w, "    • %s\n", t)
			}
			fmt.Fprintln(w)
			return nil
		}
	}

	found := nbr.SearchStandards(query)
	if len(found) == 0 {
		return fmt.Errorf("no standard matches %q", query)
	}

	printHeader(w, "STANDARDS AND REFERENCES")
	tw := newTable(w)
	fmt.Fprintf(tw, "  ID\tTitle\tSubject\n")
	fmt.Fprintf(tw, "  ──\t─────\t───────\n")
	for _, s := range found {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", s.ID, s.Title, strings.TrimSpace(s.Subtitle))
	}
	tw.Flush()
	fmt.Fprintln(w)
	return nil
}
