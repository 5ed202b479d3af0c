package query

import (
	"context"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/model"
)

// Row is one record of a query result, keyed by column name.
type Row map[string]any

type Result struct {
	Rows []Row
}

// Columns returns the union of column names across all rows, in first-seen
// order.
func (r *Result) Columns() []string {
	var columns []string
	seen := map[string]bool{}
	for _, row := range r.Rows {
		for name := range row {
			if !seen[name] {
				seen[name] = true
				columns = append(columns, name)
			}
		}
	}
	return columns
}

// Runner executes Flux scripts against the configured endpoint.
type Runner struct {
	endpoint *model.EndpointConfig
}

func NewRunner(endpoint *model.EndpointConfig) *Runner {
	return &Runner{endpoint: endpoint}
}

func (r *Runner) Run(ctx context.Context, flux string) (*Result, error) {
	client := influxdb2.NewClient(r.endpoint.URL, r.endpoint.Token)
	defer client.Close()

	queryAPI := client.QueryAPI(r.endpoint.Org)
	stream, err := queryAPI.Query(ctx, flux)
	if err != nil {
		return nil, errors.Wrap(err, "query failed")
	}

	result := &Result{}
	for stream.Next() {
		if stream.TableChanged() {
			logrus.Debugf("result table: %s", stream.TableMetadata().String())
		}
		row := Row{}
		for name, value := range stream.Record().Values() {
			row[name] = value
		}
		result.Rows = append(result.Rows, row)
	}
	if stream.Err() != nil {
		return nil, errors.Wrap(stream.Err(), "query result stream failed")
	}
	return result, nil
}
