package subcmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tigerater/chronoctl/kernel/query"
)

func init() {
	RootCmd.AddCommand(NewQueryCommand())
}

func NewQueryCommand() *cobra.Command {
	queryCmd := &QueryCommand{}

	cmd := &cobra.Command{
		Use:   "query [flux]",
		Short: "Run a Flux query and print the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  queryCmd.run,
	}

	cmd.Flags().StringVarP(&queryCmd.File, "file", "f", "", "read the query from a file instead of the argument")

	return cmd
}

type QueryCommand struct {
	File string
}

func (q *QueryCommand) run(cmd *cobra.Command, args []string) error {
	flux, err := q.script(args)
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	result, err := query.NewRunner(s.endpoint).Run(cmd.Context(), flux)
	if err != nil {
		return err
	}

	columns := result.Columns()
	header := make(table.Row, 0, len(columns))
	for _, column := range columns {
		header = append(header, column)
	}

	rows := make([]table.Row, 0, len(result.Rows))
	for _, record := range result.Rows {
		row := make(table.Row, 0, len(columns))
		for _, column := range columns {
			row = append(row, record[column])
		}
		rows = append(rows, row)
	}
	renderTable(header, rows)
	return nil
}

func (q *QueryCommand) script(args []string) (string, error) {
	if q.File != "" {
		data, err := os.ReadFile(q.File)
		if err != nil {
			return "", fmt.Errorf("failed to read query file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}
	return "", fmt.Errorf("no query given; pass a flux script or --file")
}
