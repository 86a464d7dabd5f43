package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mcarden/taskdesk/internal/app"
	"github.com/mcarden/taskdesk/internal/exitcode"
	"github.com/mcarden/taskdesk/internal/model"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	folderID string
	dueDate  string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskdesk add [--folder <folder-id>] [--due <date>] <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.folderID, "folder", "", "")
	fs.StringVar(&c.folderID, "f", "", "")
	fs.StringVar(&c.dueDate, "due", "", "")
}

func (c *AddCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	task := model.Task{
		Title:    title,
		DueDate:  c.dueDate,
		Status:   model.StatusInProgress,
		FolderID: c.folderID,
		User:     env.Accounts.Current().Name,
	}

	created, err := env.Tasks.AddTask(ctx, task)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	fmt.Fprintf(out, "%s\t%s\n", created.ID, created.Title)
	return exitcode.Success
}
