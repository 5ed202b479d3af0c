package subcmd

import (
	"testing"

	"github.com/tigerater/chronoctl/kernel/model"
)

func TestParsePermission(t *testing.T) {
	permission, err := parsePermission("read:buckets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if permission.Action != "read" || permission.Resource.Type != "buckets" {
		t.Errorf("unexpected permission: %+v", permission)
	}

	for _, bad := range []string{"buckets", "admin:buckets", "read:", ":buckets"} {
		if _, err := parsePermission(bad); err == nil {
			t.Errorf("expected error for '%s'", bad)
		}
	}
}

func TestMatchesFilter(t *testing.T) {
	bucket := model.Bucket{ID: "b1", Name: "metrics"}

	if !matchesFilter(bucket, "") {
		t.Error("empty filter must match everything")
	}
	if !matchesFilter(bucket, "$.name") {
		t.Error("expected $.name to resolve")
	}
	if matchesFilter(bucket, "$.description") {
		t.Error("empty field must not match")
	}
	if matchesFilter(bucket, "$.nope") {
		t.Error("unresolvable path must not match")
	}
}

func TestWriteCommand_SourceSelection(t *testing.T) {
	if _, err := (&WriteCommand{}).source(); err == nil {
		t.Error("expected error when no source is given")
	}
	if _, err := (&WriteCommand{File: "a.lp", SFTPHost: "h"}).source(); err == nil {
		t.Error("expected error for conflicting sources")
	}
	if _, err := (&WriteCommand{SFTPHost: "h"}).source(); err == nil {
		t.Error("expected error for sftp host without user/path")
	}

	source, err := (&WriteCommand{SFTPHost: "h", SFTPPort: 2222, SFTPUser: "u", SFTPPath: "/data.lp"}).source()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.Name() != "sftp://u@h:2222/data.lp" {
		t.Errorf("unexpected source name '%s'", source.Name())
	}
}

func TestRetentionSummary(t *testing.T) {
	infinite := model.Bucket{}
	if retentionSummary(infinite) != "infinite" {
		t.Errorf("unexpected summary '%s'", retentionSummary(infinite))
	}

	bounded := model.Bucket{RetentionRules: []model.RetentionRule{{Type: "expire", EverySeconds: 3600}}}
	if retentionSummary(bounded) != "1h0m0s" {
		t.Errorf("unexpected summary '%s'", retentionSummary(bounded))
	}
}
