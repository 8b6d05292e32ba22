package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/avictorov/studydesk/internal/cli/formatter"
	"github.com/avictorov/studydesk/internal/domain"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Log and review daily study entries",
	}

	cmd.AddCommand(
		newEntryLogCmd(app),
		newEntryListCmd(app),
		newEntryRemoveCmd(app),
	)

	return cmd
}

func newEntryLogCmd(app *App) *cobra.Command {
	var subjectRef, date, mood, note string
	var lecture, question float64
	var solved, exerciseMin int
	var exerciseDone bool

	cmd := &cobra.Command{
		Use:   "log [SUBJECT]",
		Short: "Log a day's work for a subject",
		Long: "Log a day's work for a subject. Logging the same subject and date " +
			"again overwrites the earlier figures. With no flags an interactive " +
			"form collects the values.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) > 0 {
				subjectRef = args[0]
			}

			interactive := app.Interactive && !cmd.Flags().Changed("lecture") &&
				!cmd.Flags().Changed("questions") && subjectRef == ""
			if interactive {
				return runEntryForm(ctx, app)
			}

			subject, err := resolveSubject(ctx, app, subjectRef)
			if err != nil {
				return err
			}
			entryDate, err := parseDate(date)
			if err != nil {
				return err
			}

			e := &domain.DailyEntry{
				SubjectID:       subject.ID,
				EntryDate:       entryDate,
				LectureHours:    lecture,
				QuestionHours:   question,
				QuestionsSolved: solved,
				ExerciseDone:    exerciseDone,
				ExerciseMin:     exerciseMin,
				Mood:            domain.Mood(mood),
				Note:            note,
			}
			if err := app.Entries.Log(ctx, e); err != nil {
				return err
			}

			fmt.Printf("Logged %s for %s on %s\n",
				formatter.FormatHours(e.TotalHours()), subject.Name, entryDate.Format(dateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD, default today)")
	cmd.Flags().Float64Var(&lecture, "lecture", 0, "Lecture/study hours")
	cmd.Flags().Float64Var(&question, "questions", 0, "Question-solving hours")
	cmd.Flags().IntVar(&solved, "solved", 0, "Questions solved")
	cmd.Flags().BoolVar(&exerciseDone, "exercise", false, "Exercise completed")
	cmd.Flags().IntVar(&exerciseMin, "exercise-min", 0, "Exercise minutes")
	cmd.Flags().StringVar(&mood, "mood", "good", "Mood (great|good|okay|tired|stressed)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")

	return cmd
}

// runEntryForm collects a daily entry through a huh form.
func runEntryForm(ctx context.Context, app *App) error {
	subjects, err := app.Subjects.List(ctx)
	if err != nil {
		return err
	}
	if len(subjects) == 0 {
		return fmt.Errorf("no subjects yet, add one first: studydesk subject add")
	}

	subjectOpts := make([]huh.Option[int64], len(subjects))
	for i, s := range subjects {
		subjectOpts[i] = huh.NewOption(s.Name, s.ID)
	}
	moodOpts := []huh.Option[string]{
		huh.NewOption("great", "great"),
		huh.NewOption("good", "good"),
		huh.NewOption("okay", "okay"),
		huh.NewOption("tired", "tired"),
		huh.NewOption("stressed", "stressed"),
	}

	var subjectID int64
	var date, lecture, question, solved, exerciseMin string
	var moodStr = "good"
	var note string
	var exerciseDone bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Subject").
				Options(subjectOpts...).
				Value(&subjectID),
			huh.NewInput().
				Title("Date (blank for today)").
				Placeholder("2026-03-02").
				Value(&date).
				Validate(validateOptionalDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Lecture hours").
				Placeholder("2").
				Value(&lecture).
				Validate(validateNonNegativeFloat),
			huh.NewInput().
				Title("Question hours").
				Placeholder("1").
				Value(&question).
				Validate(validateNonNegativeFloat),
			huh.NewInput().
				Title("Questions solved").
				Placeholder("0").
				Value(&solved).
				Validate(validateNonNegativeInt),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Exercised today?").
				Value(&exerciseDone),
			huh.NewInput().
				Title("Exercise minutes").
				Placeholder("0").
				Value(&exerciseMin).
				Validate(validateNonNegativeInt),
			huh.NewSelect[string]().
				Title("Mood").
				Options(moodOpts...).
				Value(&moodStr),
			huh.NewInput().
				Title("Note (optional)").
				Value(&note),
		),
	).WithTheme(studyHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	entryDate, err := parseDate(date)
	if err != nil {
		return err
	}
	e := &domain.DailyEntry{
		SubjectID:       subjectID,
		EntryDate:       entryDate,
		LectureHours:    parseFloatOr(lecture, 0),
		QuestionHours:   parseFloatOr(question, 0),
		QuestionsSolved: parseIntOr(solved, 0),
		ExerciseDone:    exerciseDone,
		ExerciseMin:     parseIntOr(exerciseMin, 0),
		Mood:            domain.Mood(moodStr),
		Note:            note,
	}
	if err := app.Entries.Log(ctx, e); err != nil {
		return err
	}

	fmt.Printf("Logged %s on %s\n", formatter.FormatHours(e.TotalHours()), entryDate.Format(dateLayout))
	return nil
}

func newEntryListCmd(app *App) *cobra.Command {
	var subjectRef, date, from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List daily entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				entries []*domain.DailyEntry
				err     error
			)
			switch {
			case subjectRef != "":
				subject, serr := resolveSubject(ctx, app, subjectRef)
				if serr != nil {
					return serr
				}
				entries, err = app.Entries.ListBySubject(ctx, subject.ID)
			case from != "" || to != "":
				fromDate, derr := parseDate(from)
				if derr != nil {
					return derr
				}
				toDate, derr := parseDate(to)
				if derr != nil {
					return derr
				}
				entries, err = app.Entries.ListByDateRange(ctx, fromDate, toDate)
			default:
				d, derr := parseDate(date)
				if derr != nil {
					return derr
				}
				entries, err = app.Entries.ListByDate(ctx, d)
			}
			if err != nil {
				return err
			}

			names, err := subjectNameMap(ctx, app)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatEntryList(entries, names))
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Filter by subject (ID or name)")
	cmd.Flags().StringVar(&date, "date", "", "Single date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD)")

	return cmd
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Entries.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed entry #%d\n", id)
			return nil
		},
	}
}
