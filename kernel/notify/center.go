package notify

import (
	"sort"
	"time"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
)

type Style string

const (
	StyleSuccess Style = "success"
	StyleError   Style = "error"
	StyleInfo    Style = "info"
)

const (
	// DefaultDuration is how long a banner stays up when the publisher does
	// not say otherwise. Errors linger longer.
	DefaultDuration = 5 * time.Second
	ErrorDuration   = 10 * time.Second
)

type Notification struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Style     Style         `json:"style"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Center is the global toast/banner collector. Publish is fire-and-forget;
// the publisher never waits on, or learns about, consumption.
type Center struct {
	items cmap.ConcurrentMap[string, Notification]
}

func NewCenter() *Center {
	return &Center{items: cmap.New[Notification]()}
}

func (c *Center) Publish(n Notification) string {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if n.Duration == 0 {
		n.Duration = DefaultDuration
	}
	c.items.Set(n.ID, n)
	return n.ID
}

func (c *Center) Success(message string) string {
	return c.Publish(Notification{Message: message, Style: StyleSuccess})
}

func (c *Center) Error(message string) string {
	return c.Publish(Notification{Message: message, Style: StyleError, Duration: ErrorDuration})
}

func (c *Center) Info(message string) string {
	return c.Publish(Notification{Message: message, Style: StyleInfo})
}

// Active returns the live notifications ordered by creation time.
func (c *Center) Active() []Notification {
	out := make([]Notification, 0, c.items.Count())
	for _, n := range c.items.Items() {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (c *Center) Dismiss(id string) {
	c.items.Remove(id)
}

// Expire dismisses notifications whose duration has elapsed as of now,
// returning how many were dropped.
func (c *Center) Expire(now time.Time) int {
	expired := 0
	for id, n := range c.items.Items() {
		if now.Sub(n.CreatedAt) > n.Duration {
			c.items.Remove(id)
			expired++
		}
	}
	return expired
}

// Drain returns the active notifications and clears the center. The CLI uses
// it to flush banners to the terminal after each command.
func (c *Center) Drain() []Notification {
	out := c.Active()
	for _, n := range out {
		c.items.Remove(n.ID)
	}
	return out
}
