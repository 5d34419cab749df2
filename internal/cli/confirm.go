package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todolist/internal/ui"
)

func editPrompt(oldText, newText string) string {
	return fmt.Sprintf("Change '%s' to '%s'? The timestamp will be updated too.", oldText, newText)
}

func deletePrompt(text string) string {
	return fmt.Sprintf("Delete '%s'?", text)
}

// confirm asks a yes/no question on the command's streams. It returns true
// without asking when confirmation is turned off.
func (app *App) confirm(cmd *cobra.Command, title, question string) (bool, error) {
	if !app.Config.Confirm {
		return true, nil
	}
	out := cmd.OutOrStdout()
	t := ui.Current()
	fmt.Fprintln(out, t.Title.Render(title))
	fmt.Fprintln(out, ui.Wrap(question, 72))
	fmt.Fprint(out, t.Muted.Render("[y/N] "))

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
