package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/Makepad-fr/todolist/internal/ui"
)

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
// Resources opened by the command are always released.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := &App{}
	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if cerr := app.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, ui.Current().Muted.Render("Run `todo --help` for usage."))
	}
	return ExitCode(err)
}
