package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/ui"
)

func newListCmd(app *App) *cobra.Command {
	var (
		group  bool
		format string
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items",
		Args:    exactArgs(0, "ls [--group] [--format table|json|yaml]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.open()
			if err != nil {
				return err
			}
			return writeItems(cmd.OutOrStdout(), c.Items(), format, group)
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "Group output by pending/done")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|json|yaml)")
	return cmd
}

func writeItems(w io.Writer, items []model.Item, format string, group bool) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(items)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "table", "":
		ui.Panel(w, tableLines(items, group))
		return nil
	}
	return usagef("unknown format %q (want table|json|yaml)", format)
}

func tableLines(items []model.Item, group bool) []string {
	t := ui.Current()
	d, p := model.Stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render("✔"), d,
		t.Pending.Render("•"), p,
		t.Accent.Render("Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")
	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(rows(items))...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	return lines
}

// row is an item with its 1-based position in the collection.
type row struct {
	n  int
	it model.Item
}

func rows(items []model.Item) []row {
	out := make([]row, len(items))
	for i, it := range items {
		out[i] = row{n: i + 1, it: it}
	}
	return out
}

func flatLines(rs []row) []string {
	t := ui.Current()
	if len(rs) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		text := ui.Truncate(r.it.Text, 60)
		if r.it.Completed {
			text = t.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s  %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", r.n)), t.Box(r.it.Completed), text,
			t.Muted.Render(r.it.Timestamp), t.Muted.Render(fmt.Sprintf("(id %d)", r.it.ID))))
	}
	return out
}

func groupLines(items []model.Item) []string {
	t := ui.Current()
	var pend, done []row
	for _, r := range rows(items) {
		if r.it.Completed {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
