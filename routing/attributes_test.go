package routing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttributesOrder(t *testing.T) {
	a := NewAttributes()
	a.Set("one", 1)
	a.Set("two", 2)
	a.Set("three", 3)
	a.Set("one", 11)

	if d := cmp.Diff([]string{"one", "two", "three"}, a.Keys()); d != "" {
		t.Errorf("unexpected key order (-want +got):\n%s", d)
	}

	if v, _ := a.Get("one"); v != 11 {
		t.Errorf("expected re-set value, got %v", v)
	}

	a.Delete("two")
	if d := cmp.Diff([]string{"one", "three"}, a.Keys()); d != "" {
		t.Errorf("unexpected key order after delete (-want +got):\n%s", d)
	}

	if a.Len() != 2 {
		t.Errorf("expected 2 keys, got %d", a.Len())
	}
}

func TestAttributesRange(t *testing.T) {
	a := NewAttributes()
	a.Set("one", 1)
	a.Set("two", 2)
	a.Set("three", 3)

	var seen []string
	a.Range(func(k string, _ any) bool {
		seen = append(seen, k)
		return k != "two"
	})

	if d := cmp.Diff([]string{"one", "two"}, seen); d != "" {
		t.Errorf("unexpected range visit (-want +got):\n%s", d)
	}
}

func TestSnapshotRestore(t *testing.T) {
	a := NewAttributes()
	a.Set("keep", "original")

	s := a.Snapshot()
	a.Set("keep", "changed")
	a.Set("extra", true)
	a.Delete("keep")

	a.Restore(s)
	if d := cmp.Diff([]string{"keep"}, a.Keys()); d != "" {
		t.Errorf("unexpected keys after restore (-want +got):\n%s", d)
	}

	if v, _ := a.Get("keep"); v != "original" {
		t.Errorf("expected the original value, got %v", v)
	}

	// the snapshot survives being restored and modified again
	a.Set("extra", true)
	a.Restore(s)
	if a.Len() != 1 {
		t.Errorf("expected a single key after the second restore, got %d", a.Len())
	}
}

func TestSnapshotUnaffectedByLaterWrites(t *testing.T) {
	a := NewAttributes()
	a.Set("key", "before")
	s := a.Snapshot()
	a.Set("key", "after")

	b := NewAttributes()
	b.Restore(s)
	if v, _ := b.Get("key"); v != "before" {
		t.Errorf("expected the snapshot value, got %v", v)
	}
}

func TestPathVariableHelpers(t *testing.T) {
	a := NewAttributes()
	if PathVariables(a) != nil {
		t.Error("expected nil for unset path variables")
	}

	MergePathVariables(a, map[string]string{"id": "1"})
	MergePathVariables(a, nil)
	MergePathVariables(a, map[string]string{"id": "2", "name": "x"})

	expected := map[string]string{"id": "2", "name": "x"}
	if d := cmp.Diff(expected, PathVariables(a)); d != "" {
		t.Errorf("unexpected variables (-want +got):\n%s", d)
	}

	if MatchedPattern(a) != "" || ContextPattern(a) != "" {
		t.Error("expected empty patterns before any match")
	}

	SetContextPattern(a, "/users/{id}")
	SetMatchedPattern(a, "/users/{id}/orders/{oid}")
	if ContextPattern(a) != "/users/{id}" {
		t.Error("unexpected context pattern")
	}

	if MatchedPattern(a) != "/users/{id}/orders/{oid}" {
		t.Error("unexpected matched pattern")
	}
}
