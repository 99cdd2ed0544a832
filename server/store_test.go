// ABOUTME: Tests for the SQLite resource store covering list, get, put, versioning, manifest, and revision history.
// ABOUTME: Uses temp-dir databases so each test runs against a fresh schema.
package server

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestListNamesEmptyCategory(t *testing.T) {
	s := testStore(t)
	names, err := s.ListNames("ClassPlans")
	if err != nil {
		t.Fatalf("ListNames: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("names = %v, want empty", names)
	}
	if names == nil {
		t.Error("names = nil, want empty slice so the API encodes [] not null")
	}
}

func TestPutAndGet(t *testing.T) {
	s := testStore(t)

	v, err := s.Put("ClassPlans", "Grade7", json.RawMessage(`{"a":1}`))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if v != 1 {
		t.Errorf("first version = %d, want 1", v)
	}

	content, version, err := s.Get("ClassPlans", "Grade7")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(content) != `{"a":1}` {
		t.Errorf("content = %s, want {\"a\":1}", content)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
}

func TestPutBumpsVersion(t *testing.T) {
	s := testStore(t)

	if _, err := s.Put("ClassPlans", "Grade7", json.RawMessage(`{"a":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	v, err := s.Put("ClassPlans", "Grade7", json.RawMessage(`{"a":2}`))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if v != 2 {
		t.Errorf("version after second put = %d, want 2", v)
	}

	content, _, err := s.Get("ClassPlans", "Grade7")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(content) != `{"a":2}` {
		t.Errorf("content = %s, want {\"a\":2}", content)
	}
}

func TestGetNotFound(t *testing.T) {
	s := testStore(t)
	_, _, err := s.Get("ClassPlans", "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestNamesScopedToCategory(t *testing.T) {
	s := testStore(t)
	if _, err := s.Put("ClassPlans", "Shared", json.RawMessage(`1`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := s.Put("TimeLayouts", "Shared", json.RawMessage(`2`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	content, _, err := s.Get("TimeLayouts", "Shared")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(content) != `2` {
		t.Errorf("TimeLayouts content = %s, want 2", content)
	}

	names, err := s.ListNames("ClassPlans")
	if err != nil {
		t.Fatalf("ListNames: %v", err)
	}
	if len(names) != 1 {
		t.Errorf("ClassPlans names = %v, want one entry", names)
	}
}

func TestListNamesOrdered(t *testing.T) {
	s := testStore(t)
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		if _, err := s.Put("ClassPlans", name, json.RawMessage(`{}`)); err != nil {
			t.Fatalf("Put %s: %v", name, err)
		}
	}
	names, err := s.ListNames("ClassPlans")
	if err != nil {
		t.Fatalf("ListNames: %v", err)
	}
	want := []string{"Alpha", "Mid", "Zeta"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestManifest(t *testing.T) {
	s := testStore(t)
	if _, err := s.Put("TimeLayouts", "Default", json.RawMessage(`{}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := s.Put("TimeLayouts", "Default", json.RawMessage(`{"x":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	manifest, err := s.Manifest("TimeLayouts")
	if err != nil {
		t.Fatalf("Manifest: %v", err)
	}
	entry, ok := manifest["Default"]
	if !ok {
		t.Fatalf("manifest = %v, want Default entry", manifest)
	}
	if entry.Version != 2 {
		t.Errorf("version = %d, want 2", entry.Version)
	}
	if entry.Value != "TimeLayouts/Default" {
		t.Errorf("value = %q, want TimeLayouts/Default", entry.Value)
	}
}

func TestRevisionsNewestFirst(t *testing.T) {
	s := testStore(t)
	if _, err := s.Put("PolicySource", "Default", json.RawMessage(`{"v":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := s.Put("PolicySource", "Default", json.RawMessage(`{"v":2}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	revs, err := s.Revisions("PolicySource", "Default")
	if err != nil {
		t.Fatalf("Revisions: %v", err)
	}
	if len(revs) != 2 {
		t.Fatalf("len(revs) = %d, want 2", len(revs))
	}
	if revs[0].Version != 2 || revs[1].Version != 1 {
		t.Errorf("versions = %d,%d, want 2,1", revs[0].Version, revs[1].Version)
	}
	if revs[0].RevisionID == "" || revs[0].RevisionID == revs[1].RevisionID {
		t.Errorf("revision IDs = %q,%q, want distinct non-empty ULIDs", revs[0].RevisionID, revs[1].RevisionID)
	}
	if string(revs[1].Content) != `{"v":1}` {
		t.Errorf("oldest content = %s, want {\"v\":1}", revs[1].Content)
	}
}
