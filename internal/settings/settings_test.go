package settings

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoad_FreshYieldsDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.MySetting != "test" {
		t.Errorf("expected mySetting 'test', got %q", got.MySetting)
	}
	if got != Defaults() {
		t.Errorf("expected defaults, got %+v", got)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	want := Settings{MySetting: "x", Editor: "vim", Archetype: "default"}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestSave_ReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.Save(ctx, Settings{MySetting: "one"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, Settings{MySetting: "two"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.MySetting != "two" {
		t.Errorf("expected 'two', got %q", got.MySetting)
	}
}

func TestLoad_MergesPartialRecord(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// A record written by an older build may lack keys added since; those
	// keys must come back as defaults.
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, data, updated_at) VALUES (1, ?, ?)`,
		`{"editor":"nano"}`, now)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Editor != "nano" {
		t.Errorf("expected editor 'nano', got %q", got.Editor)
	}
	if got.MySetting != "test" {
		t.Errorf("expected default mySetting 'test', got %q", got.MySetting)
	}
}

func TestGetSet(t *testing.T) {
	cfg := Defaults()

	for _, key := range Keys {
		if err := cfg.Set(key, "v-"+key); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
		got, err := cfg.Get(key)
		if err != nil {
			t.Fatalf("get %s: %v", key, err)
		}
		if got != "v-"+key {
			t.Errorf("%s: expected %q, got %q", key, "v-"+key, got)
		}
	}

	if err := cfg.Set("bogus", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := cfg.Get("bogus"); err == nil {
		t.Error("expected error for unknown key")
	}
}
