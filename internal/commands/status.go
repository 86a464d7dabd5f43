package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/mcarden/taskdesk/internal/app"
	"github.com/mcarden/taskdesk/internal/exitcode"
	"github.com/mcarden/taskdesk/internal/model"
)

func init() {
	Register(&DoneCmd{})
	Register(&ReopenCmd{})
}

// DoneCmd marks a task Completed.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "taskdesk done <task-id>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	return runStatusChange(ctx, env, args, model.StatusCompleted, out, errOut)
}

// ReopenCmd moves a task back to In Progress.
type ReopenCmd struct{}

func (c *ReopenCmd) Name() string      { return "reopen" }
func (c *ReopenCmd) Aliases() []string { return nil }
func (c *ReopenCmd) Synopsis() string  { return "Move a task back to In Progress" }
func (c *ReopenCmd) Usage() string     { return "taskdesk reopen <task-id>" }
func (c *ReopenCmd) NeedsAuth() bool   { return true }

func (c *ReopenCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ReopenCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	return runStatusChange(ctx, env, args, model.StatusInProgress, out, errOut)
}

// runStatusChange is the shared implementation for done and reopen.
func runStatusChange(ctx context.Context, env *app.Env, args []string, status string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}
	id := args[0]

	if env.Tasks.TaskByID(id) == nil {
		fmt.Fprintf(errOut, "error: task not found: %s\n", id)
		return exitcode.UserError
	}

	if err := env.Tasks.UpdateTaskStatus(ctx, id, status); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	fmt.Fprintln(out, "ok")
	return exitcode.Success
}
