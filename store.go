package advertise

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested sponsorship does not exist.
var ErrNotFound = sql.ErrNoRows

// timeLayout is what this store writes. It is fixed-width so ORDER BY on the
// text column is chronological for rows written here.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// readLayouts are accepted when reading, since other writers of the shared
// database may use RFC 3339 or SQLite's CURRENT_TIMESTAMP form. Values
// without a zone are UTC, as CURRENT_TIMESTAMP is.
var readLayouts = []string{
	timeLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// Store wraps a SQLite database holding sponsorship records.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the checkout writer and page readers proceed together; the
	// busy timeout makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS sponsorings (
    id TEXT PRIMARY KEY,
    tier TEXT NOT NULL,
    sponsor_name TEXT NOT NULL,
    sponsor_description TEXT NOT NULL DEFAULT '',
    sponsor_website TEXT NOT NULL DEFAULT '',
    sponsor_logo_url TEXT NOT NULL DEFAULT '',
    starts_at TEXT NOT NULL DEFAULT '',
    ends_at TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sponsorings_created_at ON sponsorings(created_at);
`)
	return err
}

// ListSponsorings returns every sponsorship ordered by creation time ascending.
// There is no filtering or paging; callers derive subsets in memory.
// The text ORDER BY is only chronological for a single timestamp format, so
// rows are re-sorted on the parsed time with ties kept in id order.
func (s *Store) ListSponsorings(ctx context.Context) ([]Sponsoring, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, tier, sponsor_name, sponsor_description, sponsor_website, sponsor_logo_url, starts_at, ends_at, created_at FROM sponsorings ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list sponsorings: %w", err)
	}
	defer rows.Close()

	var out []Sponsoring
	for rows.Next() {
		var sp Sponsoring
		var tier, startsAt, endsAt, createdAt string
		if err := rows.Scan(&sp.ID, &tier, &sp.Sponsor.Name, &sp.Sponsor.Description, &sp.Sponsor.Website, &sp.Sponsor.LogoURL, &startsAt, &endsAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scan sponsoring: %w", err)
		}
		sp.Tier = Tier(tier)
		if sp.StartsAt, err = parseTime(startsAt); err != nil {
			return nil, fmt.Errorf("sponsoring %s: starts_at: %w", sp.ID, err)
		}
		if sp.EndsAt, err = parseTime(endsAt); err != nil {
			return nil, fmt.Errorf("sponsoring %s: ends_at: %w", sp.ID, err)
		}
		if sp.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("sponsoring %s: created_at: %w", sp.ID, err)
		}
		out = append(out, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sponsorings: %w", err)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// GetSponsoring returns a single sponsorship by ID.
func (s *Store) GetSponsoring(ctx context.Context, id string) (Sponsoring, error) {
	var sp Sponsoring
	var tier, startsAt, endsAt, createdAt string
	err := s.db.QueryRowContext(ctx, `SELECT id, tier, sponsor_name, sponsor_description, sponsor_website, sponsor_logo_url, starts_at, ends_at, created_at FROM sponsorings WHERE id = ?`, id).
		Scan(&sp.ID, &tier, &sp.Sponsor.Name, &sp.Sponsor.Description, &sp.Sponsor.Website, &sp.Sponsor.LogoURL, &startsAt, &endsAt, &createdAt)
	if err != nil {
		return Sponsoring{}, err
	}
	sp.Tier = Tier(tier)
	if sp.StartsAt, err = parseTime(startsAt); err != nil {
		return Sponsoring{}, err
	}
	if sp.EndsAt, err = parseTime(endsAt); err != nil {
		return Sponsoring{}, err
	}
	if sp.CreatedAt, err = parseTime(createdAt); err != nil {
		return Sponsoring{}, err
	}
	return sp, nil
}

// CreateSponsoring inserts a new sponsorship record. A missing ID is derived
// from the sponsor name and a missing CreatedAt is set to now. Existing
// records are never overwritten.
func (s *Store) CreateSponsoring(ctx context.Context, sp Sponsoring) (Sponsoring, error) {
	if sp.Sponsor.Name == "" {
		return Sponsoring{}, errors.New("create sponsoring: sponsor name is required")
	}
	if sp.Tier == "" {
		sp.Tier = TierStandard
	}
	if sp.CreatedAt.IsZero() {
		sp.CreatedAt = time.Now()
	}
	if sp.ID == "" {
		sp.ID = Slugify(sp.Sponsor.Name) + "-" + strconv.FormatInt(sp.CreatedAt.UnixNano(), 36)
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO sponsorings (id, tier, sponsor_name, sponsor_description, sponsor_website, sponsor_logo_url, starts_at, ends_at, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sp.ID, string(sp.Tier), sp.Sponsor.Name, sp.Sponsor.Description, sp.Sponsor.Website, sp.Sponsor.LogoURL,
		formatTime(sp.StartsAt), formatTime(sp.EndsAt), formatTime(sp.CreatedAt))
	if err != nil {
		return Sponsoring{}, fmt.Errorf("create sponsoring %s: %w", sp.ID, err)
	}
	return sp, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	var firstErr error
	for _, layout := range readLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
