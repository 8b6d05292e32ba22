package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avictorov/studydesk/internal/db"
	"github.com/avictorov/studydesk/internal/domain"
)

// SQLiteSubjectRepo implements SubjectRepo using a SQLite database.
type SQLiteSubjectRepo struct {
	db db.DBTX
}

// NewSQLiteSubjectRepo creates a new SQLiteSubjectRepo.
func NewSQLiteSubjectRepo(conn db.DBTX) *SQLiteSubjectRepo {
	return &SQLiteSubjectRepo{db: conn}
}

func (r *SQLiteSubjectRepo) Create(ctx context.Context, s *domain.Subject) (int64, error) {
	query := `INSERT INTO subjects (name, weightage, target_total_hours, difficulty, target_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.Weightage,
		s.TargetTotalHours,
		string(s.Difficulty),
		nullableTimeToString(s.TargetDate, dateLayout),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting subject: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading subject id: %w", err)
	}
	s.ID = id
	return id, nil
}

func (r *SQLiteSubjectRepo) GetByID(ctx context.Context, id int64) (*domain.Subject, error) {
	query := `SELECT id, name, weightage, target_total_hours, difficulty, target_date, created_at, updated_at
		FROM subjects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSubject(row)
}

func (r *SQLiteSubjectRepo) List(ctx context.Context) ([]*domain.Subject, error) {
	query := `SELECT id, name, weightage, target_total_hours, difficulty, target_date, created_at, updated_at
		FROM subjects ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()
	return r.scanSubjects(rows)
}

func (r *SQLiteSubjectRepo) Update(ctx context.Context, s *domain.Subject) error {
	query := `UPDATE subjects
		SET name = ?, weightage = ?, target_total_hours = ?, difficulty = ?, target_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.Weightage,
		s.TargetTotalHours,
		string(s.Difficulty),
		nullableTimeToString(s.TargetDate, dateLayout),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating subject: %w", err)
	}
	return requireAffected(res, "subject")
}

func (r *SQLiteSubjectRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting subject: %w", err)
	}
	return requireAffected(res, "subject")
}

// scanSubject scans a single subject from a *sql.Row.
func (r *SQLiteSubjectRepo) scanSubject(row *sql.Row) (*domain.Subject, error) {
	var s domain.Subject
	var difficulty string
	var targetDate sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&s.ID, &s.Name, &s.Weightage, &s.TargetTotalHours, &difficulty, &targetDate, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("subject: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning subject: %w", err)
	}

	return r.populateSubject(&s, difficulty, targetDate, createdAtStr, updatedAtStr)
}

// scanSubjects scans multiple subjects from *sql.Rows.
func (r *SQLiteSubjectRepo) scanSubjects(rows *sql.Rows) ([]*domain.Subject, error) {
	var subjects []*domain.Subject
	for rows.Next() {
		var s domain.Subject
		var difficulty string
		var targetDate sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&s.ID, &s.Name, &s.Weightage, &s.TargetTotalHours, &difficulty, &targetDate, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning subject row: %w", err)
		}

		subject, parseErr := r.populateSubject(&s, difficulty, targetDate, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	return subjects, nil
}

// populateSubject fills in parsed fields on a Subject after scanning raw strings.
func (r *SQLiteSubjectRepo) populateSubject(s *domain.Subject, difficulty string, targetDate sql.NullString, createdAtStr, updatedAtStr string) (*domain.Subject, error) {
	s.Difficulty = domain.Difficulty(difficulty)
	s.TargetDate = parseNullableTime(targetDate, dateLayout)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return s, nil
}
