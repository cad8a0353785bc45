package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/guesstimate/internal/database"
)

// RoundFilters narrows Recent.
type RoundFilters struct {
	Game  string // empty = every game
	Limit int    // <= 0 = no limit
}

// RoundRepo handles the rounds table.
type RoundRepo struct {
	db *sql.DB
}

func NewRoundRepo(db *sql.DB) *RoundRepo { return &RoundRepo{db: db} }

// Insert stores r, assigning an ID and timestamp when missing.
func (r *RoundRepo) Insert(ctx context.Context, rd Round) (Round, error) {
	if rd.ID == "" {
		rd.ID = uuid.NewString()
	}
	if rd.CreatedAt.IsZero() {
		rd.CreatedAt = database.Now()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO rounds(id, game, target, guess, target_val, guess_val, difference, grade, unit, created_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`, rd.ID, rd.Game, rd.Target, rd.Guess, rd.TargetVal, rd.GuessVal, rd.Difference, rd.Grade, rd.Unit, rd.CreatedAt)
	if err != nil {
		return Round{}, err
	}
	return rd, nil
}

// Recent lists rounds newest first.
func (r *RoundRepo) Recent(ctx context.Context, f RoundFilters) ([]Round, error) {
	var where []string
	var args []interface{}

	if f.Game != "" {
		where = append(where, "game = ?")
		args = append(args, f.Game)
	}

	q := `SELECT id, game, target, guess, target_val, guess_val, difference, grade, unit, created_at FROM rounds`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, rowid DESC"
	if f.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Round
	for rows.Next() {
		var rd Round
		if err := rows.Scan(&rd.ID, &rd.Game, &rd.Target, &rd.Guess, &rd.TargetVal, &rd.GuessVal,
			&rd.Difference, &rd.Grade, &rd.Unit, &rd.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}

// GradeCounts tallies rounds per grade for one game.
func (r *RoundRepo) GradeCounts(ctx context.Context, game string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT grade, COUNT(*) FROM rounds WHERE game = ? GROUP BY grade`, game)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var grade string
		var n int
		if err := rows.Scan(&grade, &n); err != nil {
			return nil, err
		}
		out[grade] = n
	}
	return out, rows.Err()
}

// Clear deletes every round, reclaims the file space and reports how many
// rounds were removed.
func (r *RoundRepo) Clear(ctx context.Context) (int64, error) {
	var n int64
	err := database.WithTx(r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM rounds`)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	_, _ = r.db.ExecContext(ctx, "VACUUM")
	return n, nil
}
