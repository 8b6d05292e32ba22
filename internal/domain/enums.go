package domain

import "time"

type Difficulty string

const (
	DifficultyLow    Difficulty = "low"
	DifficultyMedium Difficulty = "medium"
	DifficultyHigh   Difficulty = "high"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityIntense  Intensity = "intense"
)

// ValidIntensities is the canonical set of accepted intensity strings.
var ValidIntensities = map[string]bool{
	"light": true, "moderate": true, "intense": true,
}

type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodOkay     Mood = "okay"
	MoodTired    Mood = "tired"
	MoodStressed Mood = "stressed"
)

// ValidMoods is the canonical set of accepted mood strings.
var ValidMoods = map[string]bool{
	"great": true, "good": true, "okay": true, "tired": true, "stressed": true,
}

type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

// WeekOrder lists weekdays Monday-first, the order every weekly view uses.
var WeekOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ValidWeekdays is the canonical set of accepted day-of-week strings.
var ValidWeekdays = map[string]bool{
	"mon": true, "tue": true, "wed": true, "thu": true,
	"fri": true, "sat": true, "sun": true,
}

// Index returns the Monday-first position of the weekday, or -1 if unknown.
func (d Weekday) Index() int {
	for i, w := range WeekOrder {
		if w == d {
			return i
		}
	}
	return -1
}

// WeekdayOf maps a calendar date to its Weekday value.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday counts Sunday as 0.
	return WeekOrder[(int(t.Weekday())+6)%7]
}

// WeekStartOf returns the Monday of the week containing t, at midnight
// in t's location.
func WeekStartOf(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7))
}

var weekdayLabels = map[Weekday]string{
	Monday: "Monday", Tuesday: "Tuesday", Wednesday: "Wednesday",
	Thursday: "Thursday", Friday: "Friday", Saturday: "Saturday", Sunday: "Sunday",
}

// Label returns the full English name of the weekday.
func (d Weekday) Label() string {
	if l, ok := weekdayLabels[d]; ok {
		return l
	}
	return string(d)
}

type PaceStatus string

const (
	PaceOnTrack PaceStatus = "on_track"
	PaceBehind  PaceStatus = "behind"
	PaceDone    PaceStatus = "done"
)
