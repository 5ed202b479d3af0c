package subcmd

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func init() {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Manage api tokens",
	}
	tokenCmd.AddCommand(newTokenListCommand())
	tokenCmd.AddCommand(newTokenCreateCommand())
	tokenCmd.AddCommand(newTokenStatusCommand("activate", "active"))
	tokenCmd.AddCommand(newTokenStatusCommand("deactivate", "inactive"))
	tokenCmd.AddCommand(newTokenDeleteCommand())
	RootCmd.AddCommand(tokenCmd)
}

func newTokenListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List api tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			s.console.FetchAuthorizations(cmd.Context())
			collection := s.console.State.Authorizations.State()
			if collection.Status != state.Done {
				return nil
			}

			var rows []table.Row
			for _, auth := range state.GetAll(collection) {
				rows = append(rows, table.Row{auth.ID, auth.Description, auth.Status, permissionSummary(auth)})
			}
			renderTable(table.Row{"ID", "Description", "Status", "Permissions"}, rows)
			return nil
		},
	}
}

func permissionSummary(auth model.Authorization) string {
	parts := make([]string, 0, len(auth.Permissions))
	for _, p := range auth.Permissions {
		parts = append(parts, p.Action+":"+p.Resource.Type)
	}
	return strings.Join(parts, ", ")
}

func newTokenCreateCommand() *cobra.Command {
	var description string
	var permissions []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an api token",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			auth := model.Authorization{Description: description, Status: "active"}
			for _, spec := range permissions {
				permission, err := parsePermission(spec)
				if err != nil {
					return err
				}
				auth.Permissions = append(auth.Permissions, permission)
			}

			created, err := s.console.CreateAuthorization(cmd.Context(), auth)
			if err != nil {
				return err
			}
			// the secret is only returned on creation, surface it here
			cmd.Println(created.Token)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "token description")
	cmd.Flags().StringArrayVarP(&permissions, "permission", "p", nil, "permission as action:resourceType (e.g. read:buckets)")
	return cmd
}

func parsePermission(spec string) (model.Permission, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return model.Permission{}, errors.Errorf("invalid permission '%s'; expected action:resourceType", spec)
	}
	switch parts[0] {
	case "read", "write":
	default:
		return model.Permission{}, errors.Errorf("invalid permission action '%s'; expected read or write", parts[0])
	}
	return model.Permission{Action: parts[0], Resource: model.PermissionResource{Type: parts[1]}}, nil
}

func newTokenStatusCommand(use, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: "Set an api token's status to " + status,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			_, err = s.console.SetAuthorizationStatus(cmd.Context(), args[0], status)
			return err
		},
	}
}

func newTokenDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an api token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			s.console.DeleteAuthorization(cmd.Context(), args[0])
			return nil
		},
	}
}
