package subcmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tigerater/chronoctl/kernel/engine"
	"github.com/tigerater/chronoctl/kernel/loader"
)

func init() {
	RootCmd.AddCommand(NewApplyCommand())
}

func NewApplyCommand() *cobra.Command {
	applyCmd := &ApplyCommand{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a YAML manifest to create/update org resources",
		RunE:  applyCmd.apply,
	}

	cmd.Flags().StringVarP(&applyCmd.ManifestPath, "config", "c", "", "path to YAML manifest file")
	cmd.Flags().BoolVar(&applyCmd.DryRun, "dry-run", false, "compute the diff without applying")
	cmd.MarkFlagRequired("config")

	return cmd
}

type ApplyCommand struct {
	ManifestPath string
	DryRun       bool
}

func (a *ApplyCommand) apply(cmd *cobra.Command, args []string) error {
	manifest, err := loader.LoadManifest(a.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.finish()

	result, err := engine.NewReconciler(s.console).Reconcile(cmd.Context(), manifest, a.DryRun)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	logrus.Infof("apply: manifest '%s' reconciled", a.ManifestPath)
	logrus.Infof("  created: %d, updated: %d, unchanged: %d", result.Created, result.Updated, result.Unchanged)
	return nil
}
