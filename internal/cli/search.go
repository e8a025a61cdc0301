package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lrhache/fhirsearch/internal/model"
	"github.com/lrhache/fhirsearch/internal/search"
	"github.com/lrhache/fhirsearch/internal/ui"
)

var searchNoCache bool

var searchCmd = &cobra.Command{
	Use:   "search <resource-type> <terms...>",
	Short: "Search loaded resources by id or free text",
	Long: `Searches one resource type by id or any combination of words.

A full id resolves directly. Anything else is matched against the type's
indexed fields; when several records match, a ranked suggestion list is
shown and, on a terminal, you pick one interactively.

Examples:
  fhirsearch search patient abernathy
  fhirsearch search practitioner "sandra gutierrez"
  fhirsearch search patient 8d389a8c --json`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		sess, err := loadSession(cmd.Context(), searchNoCache)
		if err != nil {
			return handleError(ErrFetchFailed, err, "Check network access and AWS credentials, or retry with --nocache")
		}

		typeName, ok := canonicalType(sess.reg.Schema(), args[0])
		if !ok {
			return handleError(ErrTypeNotFound,
				fmt.Errorf("unknown resource type %q", args[0]),
				"Run 'fhirsearch types' to list known types")
		}

		query := strings.Join(args[1:], " ")
		outcome := sess.engine.Search(typeName, query)
		elapsed := time.Since(start).Milliseconds()

		if jsonOutput {
			outputOutcome(typeName, query, outcome, sess, elapsed)
			return nil
		}

		switch {
		case outcome.Match != nil:
			printRecord(outcome.Match)
		case len(outcome.Suggestions) > 0:
			if picked := pickSuggestion(typeName, outcome.Suggestions); picked != nil {
				printRecord(picked)
			}
		default:
			fmt.Printf("No %s found for this search\n", strings.ToLower(typeName))
		}
		return nil
	},
}

// printRecord shows the resolved record and its connection summary.
func printRecord(rec *model.Record) {
	fmt.Println()
	if name := rec.FullName(); name != "" {
		fmt.Printf("Name: %s\n", name)
	}
	fmt.Printf("ID: %s\n", ui.ID(rec.ID))

	conns := rec.Connections()
	if len(conns) == 0 {
		fmt.Println("No connected resources")
		return
	}

	table := ui.NewTable(2)
	table.AddHeader("RESOURCE TYPE", "COUNT")
	for _, c := range conns {
		table.AddRow(c.Type, strconv.Itoa(c.Count))
	}
	fmt.Println()
	fmt.Print(table.String())
}

// pickSuggestion lists the ranked candidates and, on a terminal, prompts
// for a choice. Returns nil when the user declines or input is not
// interactive.
func pickSuggestion(typeName string, candidates []search.Candidate) *model.Record {
	fmt.Printf("Found %d %ss for your search\n", len(candidates), strings.ToLower(typeName))
	for i, c := range candidates {
		label := c.Record.FullName()
		if label == "" {
			label = c.Record.Type
		}
		fmt.Printf("%d) %s (%s) %s\n", i+1, label, ui.ID(c.Record.ID), ui.Muted.Render(fmt.Sprintf("score %d", c.Score)))
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("Type your choice [1-%d] (ENTER to exit): ", len(candidates))
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(candidates) {
			fmt.Printf("> Enter a valid numeric value [1-%d]\n", len(candidates))
			continue
		}
		return candidates[n-1].Record
	}
}

func outputOutcome(typeName, query string, outcome search.Outcome, sess *session, elapsed int64) {
	warnings := reportWarnings(sess.report)
	meta := &Meta{QueryTimeMs: elapsed}

	switch {
	case outcome.Match != nil:
		outputSuccess(map[string]interface{}{
			"query":  query,
			"type":   typeName,
			"match":  formatRecord(outcome.Match),
			"status": "match",
		}, warnings, meta)
	case len(outcome.Suggestions) > 0:
		items := make([]map[string]interface{}, len(outcome.Suggestions))
		for i, c := range outcome.Suggestions {
			rec := formatRecord(c.Record)
			rec["score"] = c.Score
			items[i] = rec
		}
		meta.Count = len(items)
		outputSuccess(map[string]interface{}{
			"query":       query,
			"type":        typeName,
			"suggestions": items,
			"status":      "suggestions",
		}, warnings, meta)
	default:
		outputSuccess(map[string]interface{}{
			"query":  query,
			"type":   typeName,
			"status": "no_match",
		}, warnings, meta)
	}
}

func formatRecord(rec *model.Record) map[string]interface{} {
	out := map[string]interface{}{
		"id":   rec.ID,
		"type": rec.Type,
	}
	if name := rec.FullName(); name != "" {
		out["name"] = name
	}

	conns := rec.Connections()
	if len(conns) > 0 {
		counts := make([]map[string]interface{}, len(conns))
		for i, c := range conns {
			counts[i] = map[string]interface{}{"type": c.Type, "count": c.Count}
		}
		out["connections"] = counts
	}
	return out
}

func init() {
	searchCmd.Flags().BoolVarP(&searchNoCache, "nocache", "n", false, "Re-fetch the batch instead of using the local cache")
	rootCmd.AddCommand(searchCmd)
}
