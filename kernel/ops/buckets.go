package ops

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

// FetchBuckets refreshes the bucket collection. The Loading dispatch lands
// before the network call; exactly one terminal dispatch follows it.
func (c *Console) FetchBuckets(ctx context.Context) {
	c.State.Buckets.Dispatch(state.SetAll[model.Bucket]{Status: state.Loading})

	buckets, err := c.Client.GetBuckets(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch buckets")
		c.State.Buckets.Dispatch(state.SetAll[model.Bucket]{Status: state.Error})
		c.Notify.Error(failureMessage("failed to fetch buckets", err))
		return
	}
	c.State.Buckets.Dispatch(state.SetAll[model.Bucket]{Status: state.Done, Entities: emptyIfNil(buckets)})
}

func (c *Console) CreateBucket(ctx context.Context, bucket model.Bucket) (model.Bucket, error) {
	created, err := c.Client.PostBucket(ctx, bucket)
	if err != nil {
		logrus.WithError(err).Errorf("failed to create bucket '%s'", bucket.Name)
		c.Notify.Error(failureMessage("failed to create bucket", err))
		return model.Bucket{}, err
	}
	c.State.Buckets.Dispatch(state.SetOne[model.Bucket]{Entity: created})
	c.Notify.Success(fmt.Sprintf("bucket '%s' created", created.Name))
	return created, nil
}

func (c *Console) UpdateBucket(ctx context.Context, id string, update map[string]any) (model.Bucket, error) {
	patched, err := c.Client.PatchBucket(ctx, id, update)
	if err != nil {
		logrus.WithError(err).Errorf("failed to update bucket [%s]", id)
		c.Notify.Error(failureMessage("failed to update bucket", err))
		return model.Bucket{}, err
	}
	c.State.Buckets.Dispatch(state.SetOne[model.Bucket]{Entity: patched})
	c.Notify.Success(fmt.Sprintf("bucket '%s' updated", patched.Name))
	return patched, nil
}

func (c *Console) DeleteBucket(ctx context.Context, id string) {
	if err := c.Client.DeleteBucket(ctx, id); err != nil {
		logrus.WithError(err).Errorf("failed to delete bucket [%s]", id)
		c.Notify.Error(failureMessage("failed to delete bucket", err))
		return
	}
	c.State.Buckets.Dispatch(state.Remove[model.Bucket]{ID: id})
	c.Notify.Success("bucket deleted")
}

func (c *Console) AddBucketLabel(ctx context.Context, bucketID, labelID string) error {
	added, err := c.Client.AddResourceLabel(ctx, "bucket", bucketID, labelID)
	if err != nil {
		logrus.WithError(err).Errorf("failed to add label to bucket [%s]", bucketID)
		c.Notify.Error(failureMessage("failed to add label", err))
		return err
	}
	c.State.Buckets.Dispatch(state.AddLabel[model.Bucket]{ID: bucketID, Label: added})
	return nil
}

func (c *Console) RemoveBucketLabel(ctx context.Context, bucketID, labelID string) {
	if err := c.Client.DeleteResourceLabel(ctx, "bucket", bucketID, labelID); err != nil {
		logrus.WithError(err).Errorf("failed to remove label from bucket [%s]", bucketID)
		c.Notify.Error(failureMessage("failed to remove label", err))
		return
	}
	c.State.Buckets.Dispatch(state.RemoveLabel[model.Bucket]{ID: bucketID, LabelID: labelID})
}
