package subcmd

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func init() {
	bucketCmd := &cobra.Command{
		Use:   "bucket",
		Short: "Manage buckets",
	}
	bucketCmd.AddCommand(newBucketListCommand())
	bucketCmd.AddCommand(newBucketCreateCommand())
	bucketCmd.AddCommand(newBucketDeleteCommand())
	bucketCmd.AddCommand(newBucketLabelCommand())
	bucketCmd.AddCommand(newBucketUnlabelCommand())
	RootCmd.AddCommand(bucketCmd)
}

func newBucketListCommand() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List buckets",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			s.console.FetchBuckets(cmd.Context())
			collection := s.console.State.Buckets.State()
			if collection.Status != state.Done {
				return nil
			}

			var rows []table.Row
			for _, bucket := range state.GetAll(collection) {
				if !matchesFilter(bucket, filter) {
					continue
				}
				rows = append(rows, table.Row{bucket.ID, bucket.Name, bucket.Description, retentionSummary(bucket)})
			}
			renderTable(table.Row{"ID", "Name", "Description", "Retention"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "jsonpath expression; rows where it resolves are kept")
	return cmd
}

func retentionSummary(bucket model.Bucket) string {
	for _, rule := range bucket.RetentionRules {
		if rule.Type == "expire" && rule.EverySeconds > 0 {
			return (time.Duration(rule.EverySeconds) * time.Second).String()
		}
	}
	return "infinite"
}

func newBucketCreateCommand() *cobra.Command {
	var description string
	var retentionSeconds int64
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			bucket := model.Bucket{Name: args[0], Description: description}
			if retentionSeconds > 0 {
				bucket.RetentionRules = []model.RetentionRule{{Type: "expire", EverySeconds: retentionSeconds}}
			}
			_, err = s.console.CreateBucket(cmd.Context(), bucket)
			return err
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "bucket description")
	cmd.Flags().Int64Var(&retentionSeconds, "retention", 0, "retention in seconds (0 for infinite)")
	return cmd
}

func newBucketDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			s.console.DeleteBucket(cmd.Context(), args[0])
			return nil
		},
	}
}

func newBucketLabelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "label <bucket-id> <label-id>",
		Short: "Attach a label to a bucket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			return s.console.AddBucketLabel(cmd.Context(), args[0], args[1])
		},
	}
}

func newBucketUnlabelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unlabel <bucket-id> <label-id>",
		Short: "Detach a label from a bucket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.finish()

			s.console.RemoveBucketLabel(cmd.Context(), args[0], args[1])
			return nil
		},
	}
}
