package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Entry is one recorded draft build.
type Entry struct {
	ID           int64
	DraftID      string
	Name         string
	OutputDir    string
	AudioPath    string
	ImageCount   int
	SegmentCount int
	DurationUS   int64
	Seed         int64
	CreatedAt    time.Time
}

const entryColumns = "id, draft_id, draft_name, output_dir, audio_path, image_count, segment_count, duration_us, seed, created_at"

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		entry      Entry
		audioPath  sql.NullString
		createdRaw string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.DraftID,
		&entry.Name,
		&entry.OutputDir,
		&audioPath,
		&entry.ImageCount,
		&entry.SegmentCount,
		&entry.DurationUS,
		&entry.Seed,
		&createdRaw,
	); err != nil {
		return nil, err
	}
	entry.AudioPath = audioPath.String
	if createdRaw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, createdRaw)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdRaw, err)
		}
		entry.CreatedAt = parsed
	}
	return &entry, nil
}

// Record inserts a build entry and returns it with its identifier and
// creation timestamp filled in.
func (s *Store) Record(ctx context.Context, entry Entry) (*Entry, error) {
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO builds (
            draft_id, draft_name, output_dir, audio_path,
            image_count, segment_count, duration_us, seed, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.DraftID,
		entry.Name,
		entry.OutputDir,
		nullableString(entry.AudioPath),
		entry.ImageCount,
		entry.SegmentCount,
		entry.DurationUS,
		entry.Seed,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert build: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

// GetByID returns one entry by its row identifier.
func (s *Store) GetByID(ctx context.Context, id int64) (*Entry, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM builds WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("build %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Recent returns build entries newest first. A limit <= 0 returns every
// entry.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	ctx = ensureContext(ctx)

	query := `SELECT ` + entryColumns + ` FROM builds ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list builds: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Count returns the number of recorded builds.
func (s *Store) Count(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM builds`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count builds: %w", err)
	}
	return count, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
