package model

import (
	"testing"
)

func TestGetKind_Bucket(t *testing.T) {
	k, err := GetKind("bucket")
	if err != nil {
		t.Fatalf("expected bucket to be registered, got error: %v", err)
	}
	if k.Plural != "buckets" {
		t.Errorf("expected plural 'buckets', got '%s'", k.Plural)
	}
	if k.APIPath != "/api/v2/buckets" {
		t.Errorf("unexpected api path '%s'", k.APIPath)
	}
	if !k.Labelable {
		t.Error("buckets should be labelable")
	}
}

func TestGetKind_NotFound(t *testing.T) {
	_, err := GetKind("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent resource kind")
	}
}

func TestGetKind_AuthorizationNotLabelable(t *testing.T) {
	k, err := GetKind("authorization")
	if err != nil {
		t.Fatalf("expected authorization to be registered, got error: %v", err)
	}
	if k.Labelable {
		t.Error("authorizations should not be labelable")
	}
}

func TestKinds_SortedAndComplete(t *testing.T) {
	kinds := Kinds()
	expected := []string{
		"authorization", "bucket", "check", "dashboard", "label",
		"member", "scraper", "template", "variable",
	}
	if len(kinds) != len(expected) {
		t.Fatalf("expected %d kinds, got %d: %v", len(expected), len(kinds), kinds)
	}
	for i, name := range expected {
		if kinds[i] != name {
			t.Errorf("expected kind %d to be '%s', got '%s'", i, name, kinds[i])
		}
	}
}

func TestLabeled_Interfaces(t *testing.T) {
	var bucket interface{} = &Bucket{}
	if _, ok := bucket.(Labeled); !ok {
		t.Error("*Bucket should implement Labeled")
	}

	var member interface{} = &Member{}
	if _, ok := member.(Labeled); ok {
		t.Error("*Member should not implement Labeled")
	}
}
