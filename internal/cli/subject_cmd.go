package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avictorov/studydesk/internal/cli/formatter"
	"github.com/avictorov/studydesk/internal/domain"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage subjects",
	}

	cmd.AddCommand(
		newSubjectAddCmd(app),
		newSubjectListCmd(app),
		newSubjectInspectCmd(app),
		newSubjectUpdateCmd(app),
		newSubjectRemoveCmd(app),
	)

	return cmd
}

func newSubjectAddCmd(app *App) *cobra.Command {
	var name, difficulty, targetDate string
	var weightage, targetHours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.Subject{
				Name:             name,
				Weightage:        weightage,
				TargetTotalHours: targetHours,
				Difficulty:       domain.Difficulty(difficulty),
			}
			if targetDate != "" {
				d, err := time.Parse(dateLayout, targetDate)
				if err != nil {
					return fmt.Errorf("invalid target date %q: %w", targetDate, err)
				}
				s.TargetDate = &d
			}

			if err := app.Subjects.Create(context.Background(), s); err != nil {
				return err
			}

			fmt.Printf("Created subject %s (#%d)\n", s.Name, s.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Subject name")
	cmd.Flags().Float64Var(&weightage, "weight", 1.0, "Relative weightage")
	cmd.Flags().Float64Var(&targetHours, "target-hours", 100, "Total hours to reach")
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "Difficulty (low|medium|high)")
	cmd.Flags().StringVar(&targetDate, "due", "", "Target date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSubjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := app.Subjects.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSubjectList(subjects))
			return nil
		},
	}
}

func newSubjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect SUBJECT",
		Short: "Show subject details and progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			subject, err := resolveSubject(ctx, app, args[0])
			if err != nil {
				return err
			}
			progress, err := app.Reports.ProgressFor(ctx, subject.ID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(subject.Name))
			fmt.Printf("Difficulty: %s · weight %.1f\n", formatter.DifficultyBadge(subject.Difficulty), subject.Weightage)
			if subject.TargetDate != nil {
				fmt.Printf("Target date: %s\n", subject.TargetDate.Format(dateLayout))
			}
			fmt.Printf("Progress: %s %s of %s  %s\n",
				formatter.RenderProgress(progress.ProgressPct/100, 20),
				formatter.FormatHours(progress.HoursLogged),
				formatter.FormatHours(progress.TargetHours),
				formatter.PaceIndicator(progress.Pace))
			if progress.DaysRemaining > 0 && progress.RemainingHrs > 0 {
				fmt.Printf("Needs about %s per day for the next %d days\n",
					formatter.FormatHours(progress.HoursPerDay), progress.DaysRemaining)
			}
			return nil
		},
	}
}

func newSubjectUpdateCmd(app *App) *cobra.Command {
	var name, difficulty, targetDate string
	var weightage, targetHours float64

	cmd := &cobra.Command{
		Use:   "update SUBJECT",
		Short: "Update a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			subject, err := resolveSubject(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				subject.Name = name
			}
			if cmd.Flags().Changed("weight") {
				subject.Weightage = weightage
			}
			if cmd.Flags().Changed("target-hours") {
				subject.TargetTotalHours = targetHours
			}
			if cmd.Flags().Changed("difficulty") {
				subject.Difficulty = domain.Difficulty(difficulty)
			}
			if cmd.Flags().Changed("due") {
				if targetDate == "" {
					subject.TargetDate = nil
				} else {
					d, err := time.Parse(dateLayout, targetDate)
					if err != nil {
						return fmt.Errorf("invalid target date %q: %w", targetDate, err)
					}
					subject.TargetDate = &d
				}
			}

			if err := app.Subjects.Update(ctx, subject); err != nil {
				return err
			}

			fmt.Printf("Updated subject %s (#%d)\n", subject.Name, subject.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Subject name")
	cmd.Flags().Float64Var(&weightage, "weight", 1.0, "Relative weightage")
	cmd.Flags().Float64Var(&targetHours, "target-hours", 100, "Total hours to reach")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty (low|medium|high)")
	cmd.Flags().StringVar(&targetDate, "due", "", "Target date (YYYY-MM-DD, empty clears)")

	return cmd
}

func newSubjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove SUBJECT",
		Short: "Remove a subject and its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			subject, err := resolveSubject(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Subjects.Delete(ctx, subject.ID); err != nil {
				return err
			}
			fmt.Printf("Removed subject %s (#%d)\n", subject.Name, subject.ID)
			return nil
		},
	}
}
