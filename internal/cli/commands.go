package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/todo"
	"github.com/Makepad-fr/todolist/internal/ui"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a new item (text can be multiple words)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := argText(args)
			if err := todo.ValidateText(text); err != nil {
				return usagef("add: %v", err)
			}
			c, err := app.open()
			if err != nil {
				return err
			}
			if err := c.Add(text); err != nil {
				return err
			}
			items := c.Items()
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%d (id %d)", len(items), items[len(items)-1].ID))
			return nil
		},
	}
}

// argText joins word arguments into item text. Bytes that are not UTF-8 are
// replaced up front, so the stored text is the text the JSON slot keeps.
func argText(args []string) string {
	return strings.ToValidUTF8(strings.Join(args, " "), "\uFFFD")
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id|#index>",
		Short: "Toggle completion of an item",
		Args:  exactArgs(1, "done <id|#index>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.open()
			if err != nil {
				return err
			}
			it, err := resolve(c, args[0])
			if err != nil {
				return err
			}
			if err := c.Toggle(it.ID); err != nil {
				return err
			}
			state := "done"
			if it.Completed {
				state = "pending"
			}
			ui.OK(cmd.OutOrStdout(), "marked "+state)
			return nil
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id|#index> <text...>",
		Short: "Change the text of an item (asks for confirmation)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return usagef("usage: todo edit <id|#index> <text...>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text := argText(args[1:])
			if err := todo.ValidateText(text); err != nil {
				return usagef("edit: %v", err)
			}
			c, err := app.open()
			if err != nil {
				return err
			}
			it, err := resolve(c, args[0])
			if err != nil {
				return err
			}
			ok, err := app.confirm(cmd, "Confirm edit", editPrompt(it.Text, text))
			if err != nil {
				return err
			}
			if !ok {
				ui.OK(cmd.OutOrStdout(), "edit cancelled")
				return nil
			}
			if err := c.Update(it.ID, text); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "updated")
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id|#index>",
		Aliases: []string{"delete"},
		Short:   "Remove an item (asks for confirmation)",
		Args:    exactArgs(1, "rm <id|#index>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.open()
			if err != nil {
				return err
			}
			it, err := resolve(c, args[0])
			if err != nil {
				return err
			}
			ok, err := app.confirm(cmd, "Confirm delete", deletePrompt(it.Text))
			if err != nil {
				return err
			}
			if !ok {
				ui.OK(cmd.OutOrStdout(), "delete cancelled")
				return nil
			}
			if err := c.Delete(it.ID); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
}

func newClearDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-done",
		Short: "Remove every completed item (asks for confirmation)",
		Args:  exactArgs(0, "clear-done"),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.open()
			if err != nil {
				return err
			}
			var ids []int64
			for _, it := range c.Items() {
				if it.Completed {
					ids = append(ids, it.ID)
				}
			}
			if len(ids) == 0 {
				ui.OK(cmd.OutOrStdout(), "nothing to clear")
				return nil
			}
			ok, err := app.confirm(cmd, "Confirm delete", fmt.Sprintf("Delete %d completed item(s)?", len(ids)))
			if err != nil {
				return err
			}
			if !ok {
				ui.OK(cmd.OutOrStdout(), "clear cancelled")
				return nil
			}
			var errs []error
			for _, id := range ids {
				errs = append(errs, c.Delete(id))
			}
			if err := errors.Join(errs...); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("removed %d", len(ids)))
			return nil
		},
	}
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: todo %s", usage)
		}
		return nil
	}
}

// resolve finds an item by id or by 1-based index. "#n" is always an index;
// a bare number is an id if one matches, otherwise an index.
func resolve(c *todo.Container, ref string) (model.Item, error) {
	ref = strings.TrimSpace(ref)
	items := c.Items()

	if rest, ok := strings.CutPrefix(ref, "#"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return model.Item{}, usagef("not an index: %s", ref)
		}
		return byIndex(items, n)
	}

	n, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return model.Item{}, usagef("not an id: %s", ref)
	}
	if i := model.IndexOf(items, n); i >= 0 {
		return items[i], nil
	}
	if n >= 1 && n <= int64(len(items)) {
		return items[n-1], nil
	}
	return model.Item{}, fmt.Errorf("%w: %s (run `todo ls` to see ids)", todo.ErrNotFound, ref)
}

func byIndex(items []model.Item, n int) (model.Item, error) {
	if n < 1 || n > len(items) {
		return model.Item{}, fmt.Errorf("%w: index out of range: have %d, got %d", todo.ErrNotFound, len(items), n)
	}
	return items[n-1], nil
}
