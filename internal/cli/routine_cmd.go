package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avictorov/studydesk/internal/cli/formatter"
	"github.com/avictorov/studydesk/internal/domain"
)

func newRoutineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage weekly exercise routines",
	}

	cmd.AddCommand(
		newRoutineAddCmd(app),
		newRoutineListCmd(app),
		newRoutineUpdateCmd(app),
		newRoutineRemoveCmd(app),
	)

	return cmd
}

func newRoutineAddCmd(app *App) *cobra.Command {
	var exerciseType, day, intensity, notes string
	var duration int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a weekly exercise routine",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday, err := parseWeekday(day)
			if err != nil {
				return err
			}
			r := &domain.ExerciseRoutine{
				ExerciseType: exerciseType,
				Day:          weekday,
				DurationMin:  duration,
				Intensity:    domain.Intensity(intensity),
				Notes:        notes,
			}
			if err := app.Routines.Create(context.Background(), r); err != nil {
				return err
			}
			fmt.Printf("Added %s on %s (#%d)\n", r.ExerciseType, weekday.Label(), r.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&exerciseType, "type", "", "Exercise type (e.g. running)")
	cmd.Flags().StringVar(&day, "day", "", "Day of week (mon..sun)")
	cmd.Flags().IntVar(&duration, "duration", 30, "Duration in minutes")
	cmd.Flags().StringVar(&intensity, "intensity", "moderate", "Intensity (light|moderate|intense)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

func newRoutineListCmd(app *App) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exercise routines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				routines []*domain.ExerciseRoutine
				err      error
			)
			if day != "" {
				weekday, derr := parseWeekday(day)
				if derr != nil {
					return derr
				}
				routines, err = app.Routines.ListByDay(ctx, weekday)
			} else {
				routines, err = app.Routines.List(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatRoutineList(routines))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Filter by day of week")

	return cmd
}

func newRoutineUpdateCmd(app *App) *cobra.Command {
	var exerciseType, day, intensity, notes string
	var duration int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an exercise routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := app.Routines.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("type") {
				r.ExerciseType = exerciseType
			}
			if cmd.Flags().Changed("day") {
				weekday, derr := parseWeekday(day)
				if derr != nil {
					return derr
				}
				r.Day = weekday
			}
			if cmd.Flags().Changed("duration") {
				r.DurationMin = duration
			}
			if cmd.Flags().Changed("intensity") {
				r.Intensity = domain.Intensity(intensity)
			}
			if cmd.Flags().Changed("notes") {
				r.Notes = notes
			}

			if err := app.Routines.Update(ctx, r); err != nil {
				return err
			}
			fmt.Printf("Updated routine #%d\n", r.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&exerciseType, "type", "", "Exercise type")
	cmd.Flags().StringVar(&day, "day", "", "Day of week (mon..sun)")
	cmd.Flags().IntVar(&duration, "duration", 30, "Duration in minutes")
	cmd.Flags().StringVar(&intensity, "intensity", "", "Intensity (light|moderate|intense)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func newRoutineRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an exercise routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Routines.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed routine #%d\n", id)
			return nil
		},
	}
}
