package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/mcarden/taskdesk/internal/app"
	"github.com/mcarden/taskdesk/internal/exitcode"
	"github.com/mcarden/taskdesk/internal/store"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Only the fields whose flags are set
// are patched; everything else is preserved.
type EditCmd struct {
	title    string
	dueDate  string
	folderID string
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "taskdesk edit [--title <title>] [--due <date>] [--folder <folder-id>] <task-id>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.dueDate, "due", "", "")
	fs.StringVar(&c.folderID, "folder", "", "")
}

func (c *EditCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}
	id := args[0]

	// An empty flag value counts as unset; clearing a field is not supported.
	var patch store.TaskPatch
	if c.title != "" {
		patch.Title = &c.title
	}
	if c.dueDate != "" {
		patch.DueDate = &c.dueDate
	}
	if c.folderID != "" {
		patch.FolderID = &c.folderID
	}

	if patch.Title == nil && patch.DueDate == nil && patch.FolderID == nil {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	if env.Tasks.TaskByID(id) == nil {
		fmt.Fprintf(errOut, "error: task not found: %s\n", id)
		return exitcode.UserError
	}

	if err := env.Tasks.EditTask(ctx, id, patch); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	fmt.Fprintln(out, "ok")
	return exitcode.Success
}
