package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avictorov/studydesk/internal/cli/formatter"
	"github.com/avictorov/studydesk/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the weekly study plan",
	}

	cmd.AddCommand(
		newPlanAddCmd(app),
		newPlanListCmd(app),
		newPlanUpdateCmd(app),
		newPlanRemoveCmd(app),
		newPlanSetDayCmd(app),
	)

	return cmd
}

func newPlanAddCmd(app *App) *cobra.Command {
	var day, subjectRef, start, end, sessionType string
	var priority int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a plan slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			weekday, err := parseWeekday(day)
			if err != nil {
				return err
			}

			slot := &domain.PlanSlot{
				Day:         weekday,
				StartTime:   start,
				EndTime:     end,
				SessionType: sessionType,
				Priority:    priority,
			}
			if subjectRef != "" {
				subject, serr := resolveSubject(ctx, app, subjectRef)
				if serr != nil {
					return serr
				}
				slot.SubjectID = &subject.ID
			}

			if err := app.Plan.Create(ctx, slot); err != nil {
				return err
			}
			fmt.Printf("Added slot %s %s-%s (#%d)\n", weekday.Label(), start, end, slot.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day of week (mon..sun)")
	cmd.Flags().StringVar(&subjectRef, "subject", "", "Subject (ID or name, optional)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&sessionType, "type", "study", "Session type (study|revision|break)")
	cmd.Flags().IntVar(&priority, "priority", 1, "Priority, lower sorts first")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the weekly plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				slots []*domain.PlanSlot
				err   error
			)
			if day != "" {
				weekday, derr := parseWeekday(day)
				if derr != nil {
					return derr
				}
				slots, err = app.Plan.ListByDay(ctx, weekday)
			} else {
				slots, err = app.Plan.List(ctx)
			}
			if err != nil {
				return err
			}

			names, err := subjectNameMap(ctx, app)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSlotList(slots, names))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Filter by day of week")

	return cmd
}

func newPlanUpdateCmd(app *App) *cobra.Command {
	var day, subjectRef, start, end, sessionType string
	var priority int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a plan slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			slot, err := app.Plan.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("day") {
				weekday, derr := parseWeekday(day)
				if derr != nil {
					return derr
				}
				slot.Day = weekday
			}
			if cmd.Flags().Changed("subject") {
				if subjectRef == "" {
					slot.SubjectID = nil
				} else {
					subject, serr := resolveSubject(ctx, app, subjectRef)
					if serr != nil {
						return serr
					}
					slot.SubjectID = &subject.ID
				}
			}
			if cmd.Flags().Changed("start") {
				slot.StartTime = start
			}
			if cmd.Flags().Changed("end") {
				slot.EndTime = end
			}
			if cmd.Flags().Changed("type") {
				slot.SessionType = sessionType
			}
			if cmd.Flags().Changed("priority") {
				slot.Priority = priority
			}

			if err := app.Plan.Update(ctx, slot); err != nil {
				return err
			}
			fmt.Printf("Updated slot #%d\n", slot.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day of week (mon..sun)")
	cmd.Flags().StringVar(&subjectRef, "subject", "", "Subject (empty clears)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&sessionType, "type", "", "Session type")
	cmd.Flags().IntVar(&priority, "priority", 1, "Priority")

	return cmd
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a plan slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Plan.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed slot #%d\n", id)
			return nil
		},
	}
}

// parseSlotSpec parses a --slot value: "START-END[@SUBJECT][/TYPE]",
// e.g. "09:00-10:30@Calculus/revision".
func parseSlotSpec(ctx context.Context, app *App, day domain.Weekday, spec string) (*domain.PlanSlot, error) {
	sessionType := "study"
	if i := strings.Index(spec, "/"); i >= 0 {
		sessionType = spec[i+1:]
		spec = spec[:i]
	}

	subjectPart := ""
	if i := strings.Index(spec, "@"); i >= 0 {
		subjectPart = spec[i+1:]
		spec = spec[:i]
	}

	times := strings.SplitN(spec, "-", 2)
	if len(times) != 2 {
		return nil, fmt.Errorf("invalid slot %q, expected START-END[@SUBJECT]", spec)
	}

	slot := &domain.PlanSlot{
		Day:         day,
		StartTime:   times[0],
		EndTime:     times[1],
		SessionType: sessionType,
		Priority:    1,
	}
	if subjectPart != "" {
		subject, err := resolveSubject(ctx, app, subjectPart)
		if err != nil {
			return nil, err
		}
		slot.SubjectID = &subject.ID
	}
	return slot, nil
}

func newPlanSetDayCmd(app *App) *cobra.Command {
	var slotSpecs []string

	cmd := &cobra.Command{
		Use:   "set-day DAY",
		Short: "Replace a day's slots in one step",
		Long: "Replace all slots of a day atomically. Each --slot takes " +
			"START-END with an optional @SUBJECT and /TYPE, e.g. " +
			"--slot 09:00-10:30@Calculus/revision. With no --slot flags the day is cleared.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			weekday, err := parseWeekday(args[0])
			if err != nil {
				return err
			}

			slots := make([]*domain.PlanSlot, 0, len(slotSpecs))
			for _, spec := range slotSpecs {
				slot, serr := parseSlotSpec(ctx, app, weekday, spec)
				if serr != nil {
					return serr
				}
				slots = append(slots, slot)
			}

			if err := app.Plan.ReplaceDay(ctx, weekday, slots); err != nil {
				return err
			}
			fmt.Printf("Set %d slots for %s\n", len(slots), weekday.Label())
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&slotSpecs, "slot", nil, "Slot spec START-END[@SUBJECT], repeatable")

	return cmd
}
