package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avictorov/studydesk/internal/cli/formatter"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the student profile",
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileSetCmd(app))

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, wakeup, bedtime string
	var targetHours float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("target-hours") {
				p.TargetDailyHours = targetHours
			}
			if cmd.Flags().Changed("wakeup") {
				p.WakeupTime = wakeup
			}
			if cmd.Flags().Changed("bedtime") {
				p.Bedtime = bedtime
			}

			if err := app.Profile.Update(ctx, p); err != nil {
				return err
			}
			fmt.Println("Profile updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Student name")
	cmd.Flags().Float64Var(&targetHours, "target-hours", 6, "Target study hours per day")
	cmd.Flags().StringVar(&wakeup, "wakeup", "", "Wakeup time (HH:MM)")
	cmd.Flags().StringVar(&bedtime, "bedtime", "", "Bedtime (HH:MM)")

	return cmd
}
