package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/avictorov/studydesk/internal/cli/formatter"
	"github.com/avictorov/studydesk/internal/report"
)

// dashboardData holds everything the dashboard renders in one refresh.
type dashboardData struct {
	daily    *report.DailyReport
	weekly   *report.WeeklyAnalysis
	progress []report.SubjectProgress
}

type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

type dashboardKeymap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func newDashboardKeymap() dashboardKeymap {
	return dashboardKeymap{
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// dashboardModel is a single-screen TUI with today's report on top and
// the week plus subject progress below.
type dashboardModel struct {
	app     *App
	keys    dashboardKeymap
	spin    spinner.Model
	data    *dashboardData
	loading bool
	err     error
	width   int
}

func newDashboardModel(app *App) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	return dashboardModel{
		app:     app,
		keys:    newDashboardKeymap(),
		spin:    s,
		loading: true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadData())
}

func (m dashboardModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		daily, err := app.Reports.Daily(ctx, today)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		weekly, err := app.Reports.Weekly(ctx, today)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		progress, err := app.Reports.Progress(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{data: dashboardData{
			daily:    daily,
			weekly:   weekly,
			progress: progress,
		}}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spin.Tick, m.loadData())
		}
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		data := msg.data
		m.data = &data
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.loading {
		return fmt.Sprintf("\n %s loading...\n", m.spin.View())
	}
	if m.err != nil {
		return "\n " + formatter.StyleRed.Render("error: "+m.err.Error()) + "\n\n " +
			formatter.Dim("r to retry, q to quit") + "\n"
	}
	if m.data == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.FormatDailyReport(m.data.daily))
	b.WriteString("\n")
	b.WriteString(formatter.FormatWeeklyAnalysis(m.data.weekly))
	b.WriteString("\n")
	b.WriteString(formatter.Header("Progress"))
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatProgressList(m.data.progress))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive study dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("dashboard needs an interactive terminal")
			}
			_, err := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen()).Run()
			return err
		},
	}
}
