package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"NewswireNotifier/internal/domain"
	"NewswireNotifier/internal/infrastructure/source"
	"NewswireNotifier/internal/newsml"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the articles parsed from a bulletin",
	Long: `Inspect parses a bulletin without delivering it and prints the extracted
articles as a table, followed by the bulletin-level metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, cfg := newApplication()

	bulletin, err := source.ReadFile(args[0])
	if err != nil {
		return err
	}

	res, err := newsml.Transform(bulletin.Body, cfg.Options())
	gate := "pass"
	switch {
	case errors.Is(err, domain.ErrBelowPriorityThreshold):
		gate = "below threshold"
	case err != nil:
		return err
	}

	out := cmd.OutOrStdout()
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Headline", "Slugline", "News Item ID", "Byline", "Paragraphs"})
	table.SetAutoWrapText(false)
	for i, article := range res.Articles {
		table.Append([]string{
			strconv.Itoa(i + 1),
			article.Headline,
			article.Slugline,
			article.NewsItemID,
			article.Byline,
			strconv.Itoa(len(article.BodyParagraphs)),
		})
	}
	table.Render()

	fmt.Fprintf(out, "dialect:  %s\n", res.Dialect)
	fmt.Fprintf(out, "priority: %s (%s)\n", newsml.PriorityLabel(res.Priority), res.Priority.Color)
	fmt.Fprintf(out, "methode:  %s\n", res.Metadata.MethodeName)
	fmt.Fprintf(out, "skipped:  %d\n", res.Skipped)
	fmt.Fprintf(out, "gate:     %s\n", gate)
	return nil
}
