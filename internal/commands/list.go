package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/mcarden/taskdesk/internal/app"
	"github.com/mcarden/taskdesk/internal/exitcode"
)

func init() {
	Register(&ListCmd{})
	Register(&ArchivedCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	folderID string
	status   string
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "taskdesk list [--folder <folder-id>] [--status <status>]"
}
func (c *ListCmd) NeedsAuth() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.folderID, "folder", "", "")
	fs.StringVar(&c.folderID, "f", "", "")
	fs.StringVar(&c.status, "status", "", "")
}

func (c *ListCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	if c.folderID != "" {
		env.Folders.SetActive(c.folderID)
	}

	printed := 0
	for _, t := range env.Tasks.Tasks() {
		if c.folderID != "" && t.FolderID != c.folderID {
			continue
		}
		if c.status != "" && t.Status != c.status {
			continue
		}
		due := t.DueDate
		if due == "" {
			due = "-"
		}
		fmt.Fprintf(out, "%s\t%-12s\t%s\t%s (%d attachments)\n", t.ID, t.Status, due, t.Title, len(t.Attachments))
		printed++
	}

	if printed == 0 {
		fmt.Fprintln(out, "no tasks")
	}
	return exitcode.Success
}

// ArchivedCmd lists archived tasks.
type ArchivedCmd struct{}

func (c *ArchivedCmd) Name() string      { return "archived" }
func (c *ArchivedCmd) Aliases() []string { return nil }
func (c *ArchivedCmd) Synopsis() string  { return "List archived tasks" }
func (c *ArchivedCmd) Usage() string     { return "taskdesk archived" }
func (c *ArchivedCmd) NeedsAuth() bool   { return true }

func (c *ArchivedCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ArchivedCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	archived := env.Tasks.ArchivedTasks()
	if len(archived) == 0 {
		fmt.Fprintln(out, "no archived tasks")
		return exitcode.Success
	}
	for _, t := range archived {
		fmt.Fprintf(out, "%s\t%s\t%s\n", t.ID, t.ArchivedAt.Format("2006-01-02 15:04"), t.Title)
	}
	return exitcode.Success
}
