package cli

import (
	"github.com/spf13/cobra"

	"github.com/avictorov/studydesk/internal/assistant"
	"github.com/avictorov/studydesk/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Subjects service.SubjectService
	Routines service.RoutineService
	Entries  service.EntryService
	Plan     service.PlanService
	Profile  service.ProfileService
	Reports  service.ReportService
	Tips     assistant.TipsService

	// Interactive is true when stdout is a terminal, enabling forms
	// and the dashboard.
	Interactive bool
}

// NewRootCmd creates the top-level "studydesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studydesk",
		Short: "Personal study tracker and planner",
	}

	root.AddCommand(
		newSubjectCmd(app),
		newRoutineCmd(app),
		newEntryCmd(app),
		newPlanCmd(app),
		newReportCmd(app),
		newProgressCmd(app),
		newProfileCmd(app),
		newAskCmd(app),
		newDashboardCmd(app),
	)

	return root
}
