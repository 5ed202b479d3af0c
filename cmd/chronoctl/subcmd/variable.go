package subcmd

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tigerater/chronoctl/kernel/state"
)

func init() {
	variableCmd := &cobra.Command{
		Use:   "variable",
		Short: "Manage dashboard variables",
	}
	variableCmd.AddCommand(newVariableListCommand())
	variableCmd.AddCommand(newVariableSelectCommand())
	variableCmd.AddCommand(newVariableDeleteCommand())
	RootCmd.AddCommand(variableCmd)
}

func newVariableListCommand() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			s.console.FetchVariables(cmd.Context())
			collection := s.console.State.Variables.State()
			if collection.Status != state.Done {
				return nil
			}

			var rows []table.Row
			for _, variable := range state.GetAll(collection) {
				if !matchesFilter(variable, filter) {
					continue
				}
				rows = append(rows, table.Row{
					variable.ID, variable.Name, variable.Arguments.Type,
					strings.Join(variable.Selected, ","),
				})
			}
			renderTable(table.Row{"ID", "Name", "Type", "Selected"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "jsonpath expression; rows where it resolves are kept")
	return cmd
}

func newVariableSelectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id> <value>",
		Short: "Select a variable value for this workstation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			// selection is local state only; nothing goes to the backend
			s.console.SelectVariableValue(args[0], args[1])
			return nil
		},
	}
}

func newVariableDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			s.console.DeleteVariable(cmd.Context(), args[0])
			return nil
		},
	}
}
