package repository

import (
	"context"
	"database/sql"
	"fmt"
)

const problemNumberSequence = "problem_number"

type SequenceRepository interface {
	// NextProblemNumber reserves the next problem number. It must run in the
	// transaction that inserts the problem so a rollback releases the number.
	NextProblemNumber(ctx context.Context, tx *sql.Tx) (int, error)
}

type pgSequenceRepository struct {
	db *sql.DB
}

func NewPgSequenceRepository(db *sql.DB) SequenceRepository {
	return &pgSequenceRepository{db: db}
}

// The counter row is locked by the upsert until the surrounding transaction
// ends. GREATEST keeps it ahead of numbers inserted explicitly, e.g. by seeding.
// The counter never moves back, so numbers of deleted problems are not reused.
const nextProblemNumberQuery = `
INSERT INTO sequences (name, value)
VALUES ($1, (SELECT COALESCE(MAX(problem_number), 0) FROM problems) + 1)
ON CONFLICT (name) DO UPDATE
SET value = GREATEST(sequences.value, (SELECT COALESCE(MAX(problem_number), 0) FROM problems)) + 1
RETURNING value`

func (r *pgSequenceRepository) NextProblemNumber(ctx context.Context, tx *sql.Tx) (int, error) {
	var next int64
	if err := pick(r.db, tx).QueryRowContext(ctx, nextProblemNumberQuery, problemNumberSequence).Scan(&next); err != nil {
		return 0, fmt.Errorf("pgSequenceRepository.NextProblemNumber: %w", err)
	}
	return int(next), nil
}
