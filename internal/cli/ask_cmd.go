package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avictorov/studydesk/internal/assistant"
	"github.com/avictorov/studydesk/internal/cli/formatter"
)

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask QUESTION...",
		Short: "Ask the study assistant a question",
		Long: "Ask a free-form question about your studies. Answers are grounded " +
			"in your subjects, progress and recent entries. Without an API key " +
			"the assistant falls back to advice computed from your data.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			answer, err := app.Tips.Ask(context.Background(), question)
			if err != nil {
				return err
			}

			fmt.Println(answer.Answer)
			if answer.Source == assistant.SourceFallback {
				fmt.Println()
				fmt.Println(formatter.Dim("(assistant unavailable, showing advice computed from your data)"))
			}
			return nil
		},
	}
}
