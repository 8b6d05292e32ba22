package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avictorov/studydesk/internal/assistant"
	"github.com/avictorov/studydesk/internal/domain"
	"github.com/avictorov/studydesk/internal/repository"
	"github.com/avictorov/studydesk/internal/service"
	"github.com/avictorov/studydesk/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	subjectRepo := repository.NewSQLiteSubjectRepo(database)
	routineRepo := repository.NewSQLiteRoutineRepo(database)
	entryRepo := repository.NewSQLiteEntryRepo(database)
	slotRepo := repository.NewSQLitePlanSlotRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		Subjects: service.NewSubjectService(subjectRepo),
		Routines: service.NewRoutineService(routineRepo),
		Entries:  service.NewEntryService(entryRepo, uow),
		Plan:     service.NewPlanService(slotRepo, uow),
		Profile:  service.NewProfileService(profileRepo),
		Reports:  service.NewReportService(subjectRepo, routineRepo, entryRepo, profileRepo),
		// nil client: the tips service answers from stored data.
		Tips: assistant.NewTipsService(nil, subjectRepo, entryRepo, profileRepo),
		// Interactive stays false so commands never open forms.
	}
}

// executeCmd runs a cobra command tree against the app and captures output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "studydesk")
}

func TestSubjectAddCmd_CreatesSubject(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "subject", "add",
		"--name", "Linear Algebra", "--target-hours", "120", "--difficulty", "high")
	require.NoError(t, err)

	subjects, err := app.Subjects.List(context.Background())
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Linear Algebra", subjects[0].Name)
	assert.Equal(t, 120.0, subjects[0].TargetTotalHours)
	assert.Equal(t, domain.DifficultyHigh, subjects[0].Difficulty)
}

func TestSubjectAddCmd_RequiresName(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "subject", "add")
	assert.Error(t, err)
}

func TestSubjectUpdateCmd_PartialUpdate(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	s := testutil.NewTestSubject("Physics")
	require.NoError(t, app.Subjects.Create(ctx, s))

	_, err := executeCmd(t, app, "subject", "update", "Physics", "--target-hours", "80")
	require.NoError(t, err)

	got, err := app.Subjects.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics", got.Name)
	assert.Equal(t, 80.0, got.TargetTotalHours)
}

func TestEntryLogCmd_WithFlags(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	s := testutil.NewTestSubject("Calculus")
	require.NoError(t, app.Subjects.Create(ctx, s))

	_, err := executeCmd(t, app, "entry", "log", "Calculus",
		"--date", "2026-03-02", "--lecture", "2", "--questions", "1.5", "--solved", "12")
	require.NoError(t, err)

	day, derr := parseDate("2026-03-02")
	require.NoError(t, derr)
	entries, err := app.Entries.ListByDate(ctx, day)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, s.ID, entries[0].SubjectID)
	assert.Equal(t, 3.5, entries[0].TotalHours())
	assert.Equal(t, 12, entries[0].QuestionsSolved)
}

func TestEntryLogCmd_UnknownSubject(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "entry", "log", "Botany", "--lecture", "1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestEntryLogCmd_SubjectPrefix(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	require.NoError(t, app.Subjects.Create(ctx, testutil.NewTestSubject("Organic Chemistry")))

	_, err := executeCmd(t, app, "entry", "log", "org", "--lecture", "1", "--date", "2026-03-02")
	require.NoError(t, err)
}

func TestPlanSetDayCmd_ReplacesSlots(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	s := testutil.NewTestSubject("Calculus")
	require.NoError(t, app.Subjects.Create(ctx, s))

	_, err := executeCmd(t, app, "plan", "set-day", "mon",
		"--slot", "09:00-10:30@Calculus/lecture",
		"--slot", "14:00-15:00")
	require.NoError(t, err)

	slots, err := app.Plan.ListByDay(ctx, domain.Monday)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].StartTime)
	require.NotNil(t, slots[0].SubjectID)
	assert.Equal(t, s.ID, *slots[0].SubjectID)
	assert.Equal(t, "lecture", slots[0].SessionType)
	assert.Nil(t, slots[1].SubjectID)
}

func TestPlanSetDayCmd_BadSlotSpec(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "set-day", "mon", "--slot", "nine-to-five")
	assert.Error(t, err)
}

func TestRoutineAddCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "routine", "add",
		"--type", "running", "--day", "wed", "--duration", "30", "--intensity", "moderate")
	require.NoError(t, err)

	routines, err := app.Routines.ListByDay(context.Background(), domain.Wednesday)
	require.NoError(t, err)
	require.Len(t, routines, 1)
	assert.Equal(t, "running", routines[0].ExerciseType)
}

func TestReportDailyCmd_InvalidDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "report", "daily", "--date", "03/02/2026")
	assert.Error(t, err)
}

func TestReportDailyCmd_EmptyDay(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "report", "daily", "--date", "2026-03-02")
	require.NoError(t, err)
}

func TestProfileSetCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "profile", "set", "--name", "Asli", "--target-hours", "5.5")
	require.NoError(t, err)

	p, err := app.Profile.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asli", p.Name)
	assert.Equal(t, 5.5, p.TargetDailyHours)
}

func TestAskCmd_AnswersWithoutModel(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "ask", "how", "should", "I", "study")
	require.NoError(t, err)
}

func TestWeekdayParsing(t *testing.T) {
	day, err := parseWeekday("Monday")
	require.NoError(t, err)
	assert.Equal(t, domain.Monday, day)

	day, err = parseWeekday("fri")
	require.NoError(t, err)
	assert.Equal(t, domain.Friday, day)

	_, err = parseWeekday("someday")
	assert.Error(t, err)
}
