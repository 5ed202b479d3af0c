package subcmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tigerater/chronoctl/kernel/export"
)

func init() {
	RootCmd.AddCommand(NewExportCommand())
}

func NewExportCommand() *cobra.Command {
	exportCmd := &ExportCommand{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a dashboard or template as a portable document",
		RunE:  exportCmd.run,
	}

	cmd.Flags().StringVarP(&exportCmd.Kind, "kind", "k", "dashboard", "what to export: dashboard or template")
	cmd.Flags().StringVar(&exportCmd.ID, "id", "", "resource id")
	cmd.Flags().StringVar(&exportCmd.Dir, "dir", ".", "local output directory")
	cmd.Flags().StringVar(&exportCmd.S3Bucket, "s3-bucket", "", "upload to this s3 bucket instead of writing locally")
	cmd.Flags().StringVar(&exportCmd.S3Prefix, "s3-prefix", "", "key prefix for s3 uploads")
	cmd.MarkFlagRequired("id")

	return cmd
}

type ExportCommand struct {
	Kind     string
	ID       string
	Dir      string
	S3Bucket string
	S3Prefix string
}

func (e *ExportCommand) run(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.finish()

	sink, err := e.sink(s)
	if err != nil {
		return err
	}
	exporter := export.NewExporter(s.console.State, sink)

	var key string
	switch e.Kind {
	case "dashboard":
		s.console.FetchDashboards(cmd.Context())
		key, err = exporter.ExportDashboard(cmd.Context(), e.ID)
	case "template":
		s.console.FetchTemplates(cmd.Context())
		key, err = exporter.ExportTemplate(cmd.Context(), e.ID)
	default:
		return fmt.Errorf("unsupported export kind '%s'; expected dashboard or template", e.Kind)
	}
	if err != nil {
		return err
	}

	logrus.Infof("exported %s '%s' as %s", e.Kind, e.ID, key)
	return nil
}

func (e *ExportCommand) sink(s *session) (export.Sink, error) {
	if e.S3Bucket == "" {
		return &export.FileSink{Dir: e.Dir}, nil
	}
	if s.endpoint.Region == "" {
		return nil, fmt.Errorf("endpoint has no region configured; re-run 'chronoctl login' with --region")
	}
	return &export.S3Sink{Bucket: e.S3Bucket, Prefix: e.S3Prefix, Region: s.endpoint.Region}, nil
}
