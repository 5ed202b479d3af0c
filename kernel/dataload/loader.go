package dataload

import (
	"bufio"
	"context"
	"strings"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/model"
)

const batchSize = 500

// RecordWriter takes line-protocol records. Satisfied by the influx
// blocking write API.
type RecordWriter interface {
	WriteRecord(ctx context.Context, line ...string) error
}

// Loader streams line protocol from a source into a bucket, batching
// records to keep write calls bounded. Blank lines and '#' comments are
// skipped.
type Loader struct {
	Writer RecordWriter
}

func NewLoader(writer RecordWriter) *Loader {
	return &Loader{Writer: writer}
}

// NewBucketLoader builds a loader that writes into the named bucket on the
// configured endpoint. Close the returned func when done.
func NewBucketLoader(endpoint *model.EndpointConfig, bucket string) (*Loader, func()) {
	client := influxdb2.NewClient(endpoint.URL, endpoint.Token)
	writeAPI := client.WriteAPIBlocking(endpoint.Org, bucket)
	return NewLoader(writeAPI), client.Close
}

func (l *Loader) Load(ctx context.Context, source Source) (int, error) {
	stream, err := source.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = stream.Close() }()

	logrus.Infof("loading records from %s", source.Name())

	written := 0
	batch := make([]string, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := l.Writer.WriteRecord(ctx, batch...); err != nil {
			return errors.Wrapf(err, "write failed after %d records", written)
		}
		written += len(batch)
		batch = batch[:0]
		return nil
	}

	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		batch = append(batch, line)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return written, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return written, errors.Wrapf(err, "failed reading from %s", source.Name())
	}
	if err := flush(); err != nil {
		return written, err
	}

	logrus.Infof("loaded %d records from %s", written, source.Name())
	return written, nil
}
