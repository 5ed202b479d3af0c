package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Sink receives exported documents keyed by file name.
type Sink interface {
	Put(ctx context.Context, key string, data []byte) error
}

type FileSink struct {
	Dir string
}

func (s *FileSink) Put(_ context.Context, key string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create export dir [%s]", s.Dir)
	}
	path := filepath.Join(s.Dir, key)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write [%s]", path)
	}
	logrus.Infof("wrote %s", path)
	return nil
}

type S3Sink struct {
	Bucket string
	Prefix string
	Region string
}

func (s *S3Sink) Put(ctx context.Context, key string, data []byte) error {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(s.Region)})
	if err != nil {
		return errors.Wrap(err, "failed to create aws session")
	}

	fullKey := key
	if s.Prefix != "" {
		fullKey = s.Prefix + "/" + key
	}

	uploader := s3manager.NewUploader(sess)
	result, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(fullKey),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upload [%s] to s3://%s", fullKey, s.Bucket)
	}

	logrus.Infof("uploaded %s", result.Location)
	return nil
}
