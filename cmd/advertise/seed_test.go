package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eringen/advertise"
)

func TestRunSeedKeepsFileOrder(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed.db")
	t.Setenv("DATABASE_PATH", dbPath)

	if err := runSeed(filepath.Join("testdata", "sponsorings.json")); err != nil {
		t.Fatalf("runSeed failed: %v", err)
	}

	store, err := advertise.NewStore(dbPath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer store.Close()

	got, err := store.ListSponsorings(context.Background())
	if err != nil {
		t.Fatalf("ListSponsorings failed: %v", err)
	}
	want := []string{"Acme", "Plain Co", "Bright Labs"}
	if len(got) != len(want) {
		t.Fatalf("count = %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Sponsor.Name != name {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Sponsor.Name, name)
		}
	}
	if premium := advertise.PremiumSponsors(got); len(premium) != 2 {
		t.Errorf("premium count = %d, want 2", len(premium))
	}
}

func TestRunSeedMissingFile(t *testing.T) {
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "seed.db"))
	if err := runSeed(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRunSeedInvalidJSON(t *testing.T) {
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "seed.db"))
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runSeed(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRunSeedRejectsDuplicateID(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed.db")
	t.Setenv("DATABASE_PATH", dbPath)
	path := filepath.Join(t.TempDir(), "ids.json")
	data := `[{"id": "acme-2024", "tier": "premium", "sponsor": {"name": "Acme"}}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runSeed(path); err != nil {
		t.Fatalf("first runSeed failed: %v", err)
	}
	err := runSeed(path)
	if err == nil {
		t.Fatal("expected error for duplicate id")
	}
	if !strings.Contains(err.Error(), "sponsoring acme-2024 already exists") {
		t.Errorf("error = %q, want duplicate id message", err)
	}

	store, err := advertise.NewStore(dbPath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer store.Close()
	got, err := store.ListSponsorings(context.Background())
	if err != nil {
		t.Fatalf("ListSponsorings failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("count = %d, want 1", len(got))
	}
}
