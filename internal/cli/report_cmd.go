package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avictorov/studydesk/internal/cli/formatter"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Study reports and analysis",
	}

	cmd.AddCommand(
		newReportDailyCmd(app),
		newReportWeeklyCmd(app),
		newReportRangeCmd(app),
	)

	return cmd
}

func newReportDailyCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Report for a single day",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(date)
			if err != nil {
				return err
			}
			rep, err := app.Reports.Daily(context.Background(), d)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDailyReport(rep))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}

func newReportWeeklyCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Analysis of the week containing a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(date)
			if err != nil {
				return err
			}
			an, err := app.Reports.Weekly(context.Background(), d)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatWeeklyAnalysis(an))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the week (default today)")

	return cmd
}

func newReportRangeCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Totals and subject shares over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDate, err := parseDate(from)
			if err != nil {
				return err
			}
			toDate, err := parseDate(to)
			if err != nil {
				return err
			}
			sum, err := app.Reports.Range(context.Background(), fromDate, toDate)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatRangeSummary(sum))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Per-subject progress against targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Reports.Progress(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProgressList(items))
			return nil
		},
	}
}
