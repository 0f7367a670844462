package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/eringen/advertise"
)

// runSeed inserts the sponsorings listed in a JSON array file. Records keep
// the file order; entries without created_at are stamped one millisecond
// apart so that order survives the created_at sort. An explicit id that is
// already stored stops the run.
func runSeed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var records []advertise.Sponsoring
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	cfg, err := configFromEnv()
	if err != nil {
		return err
	}
	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dbPath = "data/advertise.db"
	}
	store, err := advertise.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Now()
	for i, r := range records {
		if r.ID != "" {
			_, err := store.GetSponsoring(ctx, r.ID)
			if err == nil {
				return fmt.Errorf("sponsoring %s already exists", r.ID)
			}
			if !errors.Is(err, advertise.ErrNotFound) {
				return fmt.Errorf("check sponsoring %s: %w", r.ID, err)
			}
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		}
		sp, err := store.CreateSponsoring(ctx, r)
		if err != nil {
			return err
		}
		fmt.Printf("  created %s (%s, %s)\n", sp.ID, sp.Sponsor.Name, sp.Tier)
	}
	fmt.Printf("\nSeeded %d sponsorings into %s\n", len(records), dbPath)
	return nil
}
