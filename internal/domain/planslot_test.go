package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestPlanSlotValidate_Valid(t *testing.T) {
	sid := int64(1)
	p := &PlanSlot{Day: Monday, SubjectID: &sid, StartTime: "09:00", EndTime: "10:30", Priority: 1}
	assert.NoError(t, p.Validate())
}

func TestPlanSlotValidate_NoSubjectAllowed(t *testing.T) {
	p := &PlanSlot{Day: Saturday, StartTime: "14:00", EndTime: "15:00", SessionType: "revision"}
	assert.NoError(t, p.Validate())
}

func TestPlanSlotValidate_BadClock(t *testing.T) {
	cases := []struct{ start, end string }{
		{"9:00", "10:00"},
		{"09:00", "25:00"},
		{"09:60", "10:00"},
		{"morning", "noon"},
	}
	for _, c := range cases {
		p := &PlanSlot{Day: Monday, StartTime: c.start, EndTime: c.end}
		assert.Error(t, p.Validate(), "should reject %s-%s", c.start, c.end)
	}
}

func TestPlanSlotValidate_StartNotBeforeEnd(t *testing.T) {
	p := &PlanSlot{Day: Monday, StartTime: "11:00", EndTime: "10:00"}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before")

	p = &PlanSlot{Day: Monday, StartTime: "10:00", EndTime: "10:00"}
	assert.Error(t, p.Validate())
}

func TestPlanSlotDurationMin(t *testing.T) {
	p := &PlanSlot{StartTime: "09:15", EndTime: "10:45"}
	assert.Equal(t, 90, p.DurationMin())

	p = &PlanSlot{StartTime: "bad", EndTime: "10:00"}
	assert.Equal(t, 0, p.DurationMin())
}
