package notify

import (
	"testing"
	"time"
)

func TestCenter_PublishDefaults(t *testing.T) {
	c := NewCenter()
	id := c.Success("bucket created")
	if id == "" {
		t.Fatal("expected a generated notification id")
	}

	active := c.Active()
	if len(active) != 1 {
		t.Fatalf("expected 1 active notification, got %d", len(active))
	}
	if active[0].Style != StyleSuccess {
		t.Errorf("expected success style, got %s", active[0].Style)
	}
	if active[0].Duration != DefaultDuration {
		t.Errorf("expected default duration, got %v", active[0].Duration)
	}
}

func TestCenter_ErrorLingersLonger(t *testing.T) {
	c := NewCenter()
	c.Error("failed to create bucket")

	active := c.Active()
	if len(active) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(active))
	}
	if active[0].Duration != ErrorDuration {
		t.Errorf("expected error duration, got %v", active[0].Duration)
	}
}

func TestCenter_ActiveOrderedByCreation(t *testing.T) {
	c := NewCenter()
	base := time.Now()
	c.Publish(Notification{Message: "second", CreatedAt: base.Add(time.Second)})
	c.Publish(Notification{Message: "first", CreatedAt: base})

	active := c.Active()
	if len(active) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(active))
	}
	if active[0].Message != "first" || active[1].Message != "second" {
		t.Errorf("unexpected order: %s, %s", active[0].Message, active[1].Message)
	}
}

func TestCenter_Expire(t *testing.T) {
	c := NewCenter()
	base := time.Now()
	c.Publish(Notification{Message: "old", CreatedAt: base.Add(-time.Minute)})
	c.Publish(Notification{Message: "fresh", CreatedAt: base})

	if expired := c.Expire(base.Add(time.Second)); expired != 1 {
		t.Errorf("expected 1 expired, got %d", expired)
	}
	active := c.Active()
	if len(active) != 1 || active[0].Message != "fresh" {
		t.Errorf("expected only 'fresh' to remain, got %v", active)
	}
}

func TestCenter_Drain(t *testing.T) {
	c := NewCenter()
	c.Info("one")
	c.Info("two")

	drained := c.Drain()
	if len(drained) != 2 {
		t.Fatalf("expected 2 drained, got %d", len(drained))
	}
	if len(c.Active()) != 0 {
		t.Error("expected center to be empty after drain")
	}
}
