package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		name               TEXT NOT NULL,
		weightage          REAL NOT NULL DEFAULT 1.0
		                   CHECK(weightage >= 0),
		target_total_hours REAL NOT NULL DEFAULT 100.0,
		difficulty         TEXT NOT NULL DEFAULT 'medium'
		                   CHECK(difficulty IN ('low','medium','high')),
		target_date        TEXT,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS exercise_routines (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		exercise_type TEXT NOT NULL,
		day_of_week   TEXT NOT NULL
		              CHECK(day_of_week IN ('mon','tue','wed','thu','fri','sat','sun')),
		duration_min  INTEGER NOT NULL DEFAULT 30,
		intensity     TEXT NOT NULL DEFAULT 'moderate'
		              CHECK(intensity IN ('light','moderate','intense')),
		notes         TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_routines_day ON exercise_routines(day_of_week)`,

	`CREATE TABLE IF NOT EXISTS daily_entries (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		subject_id       INTEGER NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		entry_date       TEXT NOT NULL,
		lecture_hours    REAL NOT NULL DEFAULT 0 CHECK(lecture_hours >= 0),
		question_hours   REAL NOT NULL DEFAULT 0 CHECK(question_hours >= 0),
		questions_solved INTEGER NOT NULL DEFAULT 0,
		exercise_done    INTEGER NOT NULL DEFAULT 0,
		exercise_min     INTEGER NOT NULL DEFAULT 0,
		mood             TEXT NOT NULL DEFAULT 'good'
		                 CHECK(mood IN ('great','good','okay','tired','stressed')),
		note             TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL,
		UNIQUE(subject_id, entry_date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entries_date ON daily_entries(entry_date)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_subject ON daily_entries(subject_id)`,

	`CREATE TABLE IF NOT EXISTS plan_slots (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		day_of_week  TEXT NOT NULL
		             CHECK(day_of_week IN ('mon','tue','wed','thu','fri','sat','sun')),
		subject_id   INTEGER REFERENCES subjects(id) ON DELETE CASCADE,
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		session_type TEXT NOT NULL DEFAULT 'study',
		priority     INTEGER NOT NULL DEFAULT 1,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_slots_day ON plan_slots(day_of_week)`,
	`CREATE INDEX IF NOT EXISTS idx_slots_subject ON plan_slots(subject_id)`,

	`CREATE TABLE IF NOT EXISTS student_profile (
		id                 TEXT PRIMARY KEY DEFAULT 'default',
		name               TEXT NOT NULL DEFAULT '',
		target_daily_hours REAL NOT NULL DEFAULT 6.0,
		wakeup_time        TEXT NOT NULL DEFAULT '07:00',
		bedtime            TEXT NOT NULL DEFAULT '23:00'
	)`,

	// Seed default student profile
	`INSERT OR IGNORE INTO student_profile (id) VALUES ('default')`,
}
