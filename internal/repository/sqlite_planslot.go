package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avictorov/studydesk/internal/db"
	"github.com/avictorov/studydesk/internal/domain"
)

// SQLitePlanSlotRepo implements PlanSlotRepo using a SQLite database.
type SQLitePlanSlotRepo struct {
	db db.DBTX
}

// NewSQLitePlanSlotRepo creates a new SQLitePlanSlotRepo.
func NewSQLitePlanSlotRepo(conn db.DBTX) *SQLitePlanSlotRepo {
	return &SQLitePlanSlotRepo{db: conn}
}

const slotColumns = `id, day_of_week, subject_id, start_time, end_time, session_type, priority, created_at, updated_at`

const slotDayOrder = `CASE day_of_week
	WHEN 'mon' THEN 0 WHEN 'tue' THEN 1 WHEN 'wed' THEN 2 WHEN 'thu' THEN 3
	WHEN 'fri' THEN 4 WHEN 'sat' THEN 5 ELSE 6 END`

func (r *SQLitePlanSlotRepo) Create(ctx context.Context, p *domain.PlanSlot) (int64, error) {
	query := `INSERT INTO plan_slots (day_of_week, subject_id, start_time, end_time, session_type, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		string(p.Day),
		nullableInt64ToValue(p.SubjectID),
		p.StartTime,
		p.EndTime,
		p.SessionType,
		p.Priority,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting plan slot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading plan slot id: %w", err)
	}
	p.ID = id
	return id, nil
}

func (r *SQLitePlanSlotRepo) GetByID(ctx context.Context, id int64) (*domain.PlanSlot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+slotColumns+` FROM plan_slots WHERE id = ?`, id)
	return r.scanSlot(row)
}

func (r *SQLitePlanSlotRepo) List(ctx context.Context) ([]*domain.PlanSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM plan_slots ORDER BY ` + slotDayOrder + `, start_time`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plan slots: %w", err)
	}
	defer rows.Close()
	return r.scanSlots(rows)
}

func (r *SQLitePlanSlotRepo) ListByDay(ctx context.Context, day domain.Weekday) ([]*domain.PlanSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM plan_slots WHERE day_of_week = ? ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, string(day))
	if err != nil {
		return nil, fmt.Errorf("listing plan slots by day: %w", err)
	}
	defer rows.Close()
	return r.scanSlots(rows)
}

func (r *SQLitePlanSlotRepo) Update(ctx context.Context, p *domain.PlanSlot) error {
	query := `UPDATE plan_slots
		SET day_of_week = ?, subject_id = ?, start_time = ?, end_time = ?, session_type = ?, priority = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(p.Day),
		nullableInt64ToValue(p.SubjectID),
		p.StartTime,
		p.EndTime,
		p.SessionType,
		p.Priority,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan slot: %w", err)
	}
	return requireAffected(res, "plan slot")
}

func (r *SQLitePlanSlotRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plan_slots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan slot: %w", err)
	}
	return requireAffected(res, "plan slot")
}

// DeleteByDay removes every slot on the given day and returns the count.
// Zero deletions is not an error: clearing an empty day is a no-op.
func (r *SQLitePlanSlotRepo) DeleteByDay(ctx context.Context, day domain.Weekday) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plan_slots WHERE day_of_week = ?`, string(day))
	if err != nil {
		return 0, fmt.Errorf("deleting plan slots by day: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking affected rows: %w", err)
	}
	return n, nil
}

func (r *SQLitePlanSlotRepo) scanSlot(row *sql.Row) (*domain.PlanSlot, error) {
	var p domain.PlanSlot
	var day string
	var subjectID sql.NullInt64
	var createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &day, &subjectID, &p.StartTime, &p.EndTime, &p.SessionType, &p.Priority, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan slot: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan slot: %w", err)
	}

	return r.populateSlot(&p, day, subjectID, createdAtStr, updatedAtStr)
}

func (r *SQLitePlanSlotRepo) scanSlots(rows *sql.Rows) ([]*domain.PlanSlot, error) {
	var slots []*domain.PlanSlot
	for rows.Next() {
		var p domain.PlanSlot
		var day string
		var subjectID sql.NullInt64
		var createdAtStr, updatedAtStr string

		err := rows.Scan(&p.ID, &day, &subjectID, &p.StartTime, &p.EndTime, &p.SessionType, &p.Priority, &createdAtStr, &updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning plan slot row: %w", err)
		}

		slot, parseErr := r.populateSlot(&p, day, subjectID, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan slots: %w", err)
	}
	return slots, nil
}

func (r *SQLitePlanSlotRepo) populateSlot(p *domain.PlanSlot, day string, subjectID sql.NullInt64, createdAtStr, updatedAtStr string) (*domain.PlanSlot, error) {
	p.Day = domain.Weekday(day)
	if subjectID.Valid {
		v := subjectID.Int64
		p.SubjectID = &v
	}

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}
