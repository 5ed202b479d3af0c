package subcmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func init() {
	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Manage dashboards",
	}
	dashboardCmd.AddCommand(newDashboardListCommand())
	dashboardCmd.AddCommand(newDashboardCreateCommand())
	dashboardCmd.AddCommand(newDashboardDeleteCommand())
	RootCmd.AddCommand(dashboardCmd)
}

func newDashboardListCommand() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dashboards",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			s.console.FetchDashboards(cmd.Context())
			collection := s.console.State.Dashboards.State()
			if collection.Status != state.Done {
				return nil
			}

			var rows []table.Row
			for _, dashboard := range state.GetAll(collection) {
				if !matchesFilter(dashboard, filter) {
					continue
				}
				rows = append(rows, table.Row{dashboard.ID, dashboard.Name, dashboard.Description, len(dashboard.Cells)})
			}
			renderTable(table.Row{"ID", "Name", "Description", "Cells"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "jsonpath expression; rows where it resolves are kept")
	return cmd
}

func newDashboardCreateCommand() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			_, err = s.console.CreateDashboard(cmd.Context(), model.Dashboard{Name: args[0], Description: description})
			return err
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "dashboard description")
	return cmd
}

func newDashboardDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			s.console.DeleteDashboard(cmd.Context(), args[0])
			return nil
		},
	}
}
