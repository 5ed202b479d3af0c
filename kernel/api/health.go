package api

import (
	"context"
	"net/http"
	"time"

	v1client "github.com/influxdata/influxdb1-client/v2"
	"github.com/pkg/errors"
)

type HealthCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "pass" or "fail"
	Message string `json:"message,omitempty"`
	Version string `json:"version,omitempty"`
}

func (c *Client) Health(ctx context.Context) (HealthCheck, error) {
	var health HealthCheck
	err := c.do(ctx, http.MethodGet, "/health", nil, nil, http.StatusOK, &health)
	return health, err
}

// PingV1 probes the 1.x compatibility ping endpoint, for deployments still
// fronted by a legacy gateway. Returns the round-trip time and the reported
// server version.
func (c *Client) PingV1(timeout time.Duration) (time.Duration, string, error) {
	legacy, err := v1client.NewHTTPClient(v1client.HTTPConfig{Addr: c.BaseURL, Timeout: timeout})
	if err != nil {
		return 0, "", errors.Wrap(err, "failed to build legacy client")
	}
	defer func() {
		_ = legacy.Close()
	}()
	return legacy.Ping(timeout)
}
