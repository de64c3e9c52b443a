package registry

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsEmptyStore(t *testing.T) {
	store, err := Load(filepath.Join(t.TempDir(), "shims.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(store.Entries) != 0 {
		t.Fatalf("expected empty store, got %d entries", len(store.Entries))
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "shims.json")

	var store Store
	store.Upsert(Entry{
		ShimPath:    "/usr/local/bin/wrapit",
		Target:      "/opt/wrapit/bin/wrapit",
		Kind:        "symlink",
		InstalledAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	store.Upsert(Entry{ShimPath: "/home/user/bin/wrapit", Target: "/opt/wrapit/bin/wrapit", Kind: "symlink"})

	if err := store.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(loaded.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded.Entries))
	}
	if loaded.Entries[0].ShimPath != "/home/user/bin/wrapit" {
		t.Fatalf("entries must be sorted by shim path, got %q first", loaded.Entries[0].ShimPath)
	}
}

func TestUpsertReplacesExistingRecord(t *testing.T) {
	var store Store
	store.Upsert(Entry{ShimPath: "/usr/local/bin/wrapit", Kind: "symlink"})
	store.Upsert(Entry{ShimPath: "/usr/local/bin/wrapit", Kind: "script"})

	if len(store.Entries) != 1 {
		t.Fatalf("expected a single entry, got %d", len(store.Entries))
	}
	if store.Entries[0].Kind != "script" {
		t.Fatalf("expected the record to be replaced, kind is %q", store.Entries[0].Kind)
	}
}

func TestRemoveByPath(t *testing.T) {
	var store Store
	store.Upsert(Entry{ShimPath: "/usr/local/bin/wrapit"})

	if _, ok := store.RemoveByPath("/usr/local/bin/wrapit"); !ok {
		t.Fatal("expected removal to succeed")
	}
	if _, ok := store.RemoveByPath("/usr/local/bin/wrapit"); ok {
		t.Fatal("expected second removal to fail")
	}
	if len(store.Entries) != 0 {
		t.Fatalf("expected empty store, got %d entries", len(store.Entries))
	}
}
