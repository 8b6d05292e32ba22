package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avictorov/studydesk/internal/db"
	"github.com/avictorov/studydesk/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.StudentProfile, error) {
	query := `SELECT id, name, target_daily_hours, wakeup_time, bedtime
		FROM student_profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.StudentProfile
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.TargetDailyHours,
		&p.WakeupTime,
		&p.Bedtime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("student profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning student profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.StudentProfile) error {
	query := `INSERT OR REPLACE INTO student_profile (id, name, target_daily_hours, wakeup_time, bedtime)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.TargetDailyHours,
		p.WakeupTime,
		p.Bedtime,
	)
	if err != nil {
		return fmt.Errorf("upserting student profile: %w", err)
	}
	return nil
}
