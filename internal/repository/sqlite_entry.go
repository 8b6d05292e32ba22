package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avictorov/studydesk/internal/db"
	"github.com/avictorov/studydesk/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo using a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(conn db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: conn}
}

const entryColumns = `id, subject_id, entry_date, lecture_hours, question_hours, questions_solved,
	exercise_done, exercise_min, mood, note, created_at, updated_at`

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.DailyEntry) (int64, error) {
	query := `INSERT INTO daily_entries (subject_id, entry_date, lecture_hours, question_hours, questions_solved,
		exercise_done, exercise_min, mood, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.SubjectID,
		e.EntryDate.Format(dateLayout),
		e.LectureHours,
		e.QuestionHours,
		e.QuestionsSolved,
		boolToInt(e.ExerciseDone),
		e.ExerciseMin,
		string(e.Mood),
		e.Note,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting daily entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading entry id: %w", err)
	}
	e.ID = id
	return id, nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id int64) (*domain.DailyEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM daily_entries WHERE id = ?`, id)
	return r.scanEntry(row)
}

func (r *SQLiteEntryRepo) GetBySubjectAndDate(ctx context.Context, subjectID int64, date time.Time) (*domain.DailyEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM daily_entries WHERE subject_id = ? AND entry_date = ?`
	row := r.db.QueryRowContext(ctx, query, subjectID, date.Format(dateLayout))
	return r.scanEntry(row)
}

func (r *SQLiteEntryRepo) List(ctx context.Context) ([]*domain.DailyEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM daily_entries ORDER BY entry_date DESC, subject_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing daily entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.DailyEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM daily_entries WHERE entry_date = ? ORDER BY subject_id`
	rows, err := r.db.QueryContext(ctx, query, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing entries by date: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.DailyEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM daily_entries
		WHERE entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date, subject_id`
	rows, err := r.db.QueryContext(ctx, query, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing entries by date range: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListBySubject(ctx context.Context, subjectID int64) ([]*domain.DailyEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM daily_entries WHERE subject_id = ? ORDER BY entry_date`
	rows, err := r.db.QueryContext(ctx, query, subjectID)
	if err != nil {
		return nil, fmt.Errorf("listing entries by subject: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) Update(ctx context.Context, e *domain.DailyEntry) error {
	query := `UPDATE daily_entries
		SET subject_id = ?, entry_date = ?, lecture_hours = ?, question_hours = ?, questions_solved = ?,
			exercise_done = ?, exercise_min = ?, mood = ?, note = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.SubjectID,
		e.EntryDate.Format(dateLayout),
		e.LectureHours,
		e.QuestionHours,
		e.QuestionsSolved,
		boolToInt(e.ExerciseDone),
		e.ExerciseMin,
		string(e.Mood),
		e.Note,
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating daily entry: %w", err)
	}
	return requireAffected(res, "daily entry")
}

func (r *SQLiteEntryRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM daily_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting daily entry: %w", err)
	}
	return requireAffected(res, "daily entry")
}

func (r *SQLiteEntryRepo) scanEntry(row *sql.Row) (*domain.DailyEntry, error) {
	var e domain.DailyEntry
	var dateStr, mood string
	var exerciseDone int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&e.ID, &e.SubjectID, &dateStr, &e.LectureHours, &e.QuestionHours, &e.QuestionsSolved,
		&exerciseDone, &e.ExerciseMin, &mood, &e.Note, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning daily entry: %w", err)
	}

	return r.populateEntry(&e, dateStr, mood, exerciseDone, createdAtStr, updatedAtStr)
}

func (r *SQLiteEntryRepo) scanEntries(rows *sql.Rows) ([]*domain.DailyEntry, error) {
	var entries []*domain.DailyEntry
	for rows.Next() {
		var e domain.DailyEntry
		var dateStr, mood string
		var exerciseDone int
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&e.ID, &e.SubjectID, &dateStr, &e.LectureHours, &e.QuestionHours, &e.QuestionsSolved,
			&exerciseDone, &e.ExerciseMin, &mood, &e.Note, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning entry row: %w", err)
		}

		entry, parseErr := r.populateEntry(&e, dateStr, mood, exerciseDone, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteEntryRepo) populateEntry(e *domain.DailyEntry, dateStr, mood string, exerciseDone int, createdAtStr, updatedAtStr string) (*domain.DailyEntry, error) {
	e.Mood = domain.Mood(mood)
	e.ExerciseDone = intToBool(exerciseDone)

	var parseErr error
	e.EntryDate, parseErr = time.Parse(dateLayout, dateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing entry_date: %w", parseErr)
	}
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return e, nil
}
