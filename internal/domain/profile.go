package domain

// StudentProfile holds the single user's study preferences.
// Exactly one row exists, seeded by the migrations.
type StudentProfile struct {
	ID               string
	Name             string
	TargetDailyHours float64
	WakeupTime       string // HH:MM
	Bedtime          string // HH:MM
}
