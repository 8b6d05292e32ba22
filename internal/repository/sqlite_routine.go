package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avictorov/studydesk/internal/db"
	"github.com/avictorov/studydesk/internal/domain"
)

// SQLiteRoutineRepo implements RoutineRepo using a SQLite database.
type SQLiteRoutineRepo struct {
	db db.DBTX
}

// NewSQLiteRoutineRepo creates a new SQLiteRoutineRepo.
func NewSQLiteRoutineRepo(conn db.DBTX) *SQLiteRoutineRepo {
	return &SQLiteRoutineRepo{db: conn}
}

const routineColumns = `id, exercise_type, day_of_week, duration_min, intensity, notes, created_at, updated_at`

func (r *SQLiteRoutineRepo) Create(ctx context.Context, rt *domain.ExerciseRoutine) (int64, error) {
	query := `INSERT INTO exercise_routines (exercise_type, day_of_week, duration_min, intensity, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		rt.ExerciseType,
		string(rt.Day),
		rt.DurationMin,
		string(rt.Intensity),
		rt.Notes,
		rt.CreatedAt.Format(time.RFC3339),
		rt.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting exercise routine: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading routine id: %w", err)
	}
	rt.ID = id
	return id, nil
}

func (r *SQLiteRoutineRepo) GetByID(ctx context.Context, id int64) (*domain.ExerciseRoutine, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+routineColumns+` FROM exercise_routines WHERE id = ?`, id)
	return r.scanRoutine(row)
}

func (r *SQLiteRoutineRepo) List(ctx context.Context) ([]*domain.ExerciseRoutine, error) {
	query := `SELECT ` + routineColumns + ` FROM exercise_routines
		ORDER BY CASE day_of_week
			WHEN 'mon' THEN 0 WHEN 'tue' THEN 1 WHEN 'wed' THEN 2 WHEN 'thu' THEN 3
			WHEN 'fri' THEN 4 WHEN 'sat' THEN 5 ELSE 6 END, exercise_type`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing exercise routines: %w", err)
	}
	defer rows.Close()
	return r.scanRoutines(rows)
}

func (r *SQLiteRoutineRepo) ListByDay(ctx context.Context, day domain.Weekday) ([]*domain.ExerciseRoutine, error) {
	query := `SELECT ` + routineColumns + ` FROM exercise_routines WHERE day_of_week = ? ORDER BY exercise_type`
	rows, err := r.db.QueryContext(ctx, query, string(day))
	if err != nil {
		return nil, fmt.Errorf("listing routines by day: %w", err)
	}
	defer rows.Close()
	return r.scanRoutines(rows)
}

func (r *SQLiteRoutineRepo) Update(ctx context.Context, rt *domain.ExerciseRoutine) error {
	query := `UPDATE exercise_routines
		SET exercise_type = ?, day_of_week = ?, duration_min = ?, intensity = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		rt.ExerciseType,
		string(rt.Day),
		rt.DurationMin,
		string(rt.Intensity),
		rt.Notes,
		rt.UpdatedAt.Format(time.RFC3339),
		rt.ID,
	)
	if err != nil {
		return fmt.Errorf("updating exercise routine: %w", err)
	}
	return requireAffected(res, "exercise routine")
}

func (r *SQLiteRoutineRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM exercise_routines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting exercise routine: %w", err)
	}
	return requireAffected(res, "exercise routine")
}

func (r *SQLiteRoutineRepo) scanRoutine(row *sql.Row) (*domain.ExerciseRoutine, error) {
	var rt domain.ExerciseRoutine
	var day, intensity string
	var createdAtStr, updatedAtStr string

	err := row.Scan(&rt.ID, &rt.ExerciseType, &day, &rt.DurationMin, &intensity, &rt.Notes, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("exercise routine: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning exercise routine: %w", err)
	}

	return r.populateRoutine(&rt, day, intensity, createdAtStr, updatedAtStr)
}

func (r *SQLiteRoutineRepo) scanRoutines(rows *sql.Rows) ([]*domain.ExerciseRoutine, error) {
	var routines []*domain.ExerciseRoutine
	for rows.Next() {
		var rt domain.ExerciseRoutine
		var day, intensity string
		var createdAtStr, updatedAtStr string

		err := rows.Scan(&rt.ID, &rt.ExerciseType, &day, &rt.DurationMin, &intensity, &rt.Notes, &createdAtStr, &updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning routine row: %w", err)
		}

		routine, parseErr := r.populateRoutine(&rt, day, intensity, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		routines = append(routines, routine)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating routines: %w", err)
	}
	return routines, nil
}

func (r *SQLiteRoutineRepo) populateRoutine(rt *domain.ExerciseRoutine, day, intensity, createdAtStr, updatedAtStr string) (*domain.ExerciseRoutine, error) {
	rt.Day = domain.Weekday(day)
	rt.Intensity = domain.Intensity(intensity)

	var parseErr error
	rt.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	rt.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return rt, nil
}
