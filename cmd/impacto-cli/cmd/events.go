package cmd

import (
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/impacto/site/cmd/impacto-cli/internal/output"
	"github.com/impacto/site/internal/pubsub"

	// Defines the lead events.
	_ "github.com/impacto/site/internal/modules/leadapi"
)

var eventsFormat string

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the internal event bus",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every event topic and what publishes it",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(eventsFormat)
		if err != nil {
			return err
		}
		return printEvents(cmd.OutOrStdout(), pubsub.Catalogue(), format)
	},
}

func init() {
	eventsListCmd.Flags().StringVarP(&eventsFormat, "output", "o", "table", "output format (table|json)")
	eventsCmd.AddCommand(eventsListCmd)
	rootCmd.AddCommand(eventsCmd)
}

type eventRow struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func printEvents(w io.Writer, catalogue map[string]string, format output.Format) error {
	rows := make([]eventRow, 0, len(catalogue))
	for name, desc := range catalogue {
		rows = append(rows, eventRow{Name: name, Description: desc})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })

	if format == output.FormatJSON {
		return output.JSON(w, struct {
			Events []eventRow `json:"events"`
			Count  int        `json:"count"`
		}{Events: rows, Count: len(rows)})
	}

	table := make([][]string, len(rows))
	for i, r := range rows {
		table[i] = []string{r.Name, output.Truncate(r.Description, 60)}
	}
	return output.Table(w, []string{"NAME", "DESCRIPTION"}, table, "No events defined")
}
