package subcmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tigerater/chronoctl/kernel/dataload"
)

func init() {
	RootCmd.AddCommand(NewWriteCommand())
}

func NewWriteCommand() *cobra.Command {
	writeCmd := &WriteCommand{}

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Load line-protocol records into a bucket",
		RunE:  writeCmd.run,
	}

	cmd.Flags().StringVarP(&writeCmd.Bucket, "bucket", "b", "", "target bucket name")
	cmd.Flags().StringVarP(&writeCmd.File, "file", "f", "", "local line-protocol file")
	cmd.Flags().StringVar(&writeCmd.SFTPHost, "sftp-host", "", "pull the file from this sftp host instead")
	cmd.Flags().IntVar(&writeCmd.SFTPPort, "sftp-port", 22, "sftp port")
	cmd.Flags().StringVar(&writeCmd.SFTPUser, "sftp-user", "", "sftp username")
	cmd.Flags().StringVar(&writeCmd.SFTPPassword, "sftp-password", "", "sftp password")
	cmd.Flags().StringVar(&writeCmd.SFTPPath, "sftp-path", "", "remote file path")
	cmd.MarkFlagRequired("bucket")

	return cmd
}

type WriteCommand struct {
	Bucket       string
	File         string
	SFTPHost     string
	SFTPPort     int
	SFTPUser     string
	SFTPPassword string
	SFTPPath     string
}

func (w *WriteCommand) run(cmd *cobra.Command, args []string) error {
	source, err := w.source()
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	loader, closer := dataload.NewBucketLoader(s.endpoint, w.Bucket)
	defer closer()

	written, err := loader.Load(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	logrus.Infof("wrote %d records to bucket '%s'", written, w.Bucket)
	return nil
}

func (w *WriteCommand) source() (dataload.Source, error) {
	switch {
	case w.File != "" && w.SFTPHost != "":
		return nil, fmt.Errorf("--file and --sftp-host are mutually exclusive")
	case w.File != "":
		return &dataload.FileSource{Path: w.File}, nil
	case w.SFTPHost != "":
		if w.SFTPUser == "" || w.SFTPPath == "" {
			return nil, fmt.Errorf("--sftp-user and --sftp-path are required with --sftp-host")
		}
		return &dataload.SFTPSource{
			Host:     w.SFTPHost,
			Port:     w.SFTPPort,
			Username: w.SFTPUser,
			Password: w.SFTPPassword,
			Path:     w.SFTPPath,
		}, nil
	default:
		return nil, fmt.Errorf("no source given; pass --file or --sftp-host")
	}
}
