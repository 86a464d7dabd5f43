package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mcarden/taskdesk/internal/app"
	"github.com/mcarden/taskdesk/internal/exitcode"
)

func init() {
	Register(&AttachCmd{})
	Register(&DetachCmd{})
}

// AttachCmd encodes a local file and attaches it to a task.
type AttachCmd struct{}

func (c *AttachCmd) Name() string      { return "attach" }
func (c *AttachCmd) Aliases() []string { return nil }
func (c *AttachCmd) Synopsis() string  { return "Attach a file to a task" }
func (c *AttachCmd) Usage() string     { return "taskdesk attach <task-id> <file>" }
func (c *AttachCmd) NeedsAuth() bool   { return true }

func (c *AttachCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AttachCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: task id and file required")
		return exitcode.UserError
	}
	id, path := args[0], args[1]

	if env.Tasks.TaskByID(id) == nil {
		fmt.Fprintf(errOut, "error: task not found: %s\n", id)
		return exitcode.UserError
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	defer f.Close()

	// Encoding runs on its own goroutine; block until it lands.
	if err := <-env.Tasks.AddAttachment(ctx, id, filepath.Base(path), f); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	fmt.Fprintln(out, "ok")
	return exitcode.Success
}

// DetachCmd removes an attachment by position.
type DetachCmd struct{}

func (c *DetachCmd) Name() string      { return "detach" }
func (c *DetachCmd) Aliases() []string { return nil }
func (c *DetachCmd) Synopsis() string  { return "Remove an attachment from a task" }
func (c *DetachCmd) Usage() string     { return "taskdesk detach <task-id> <index>" }
func (c *DetachCmd) NeedsAuth() bool   { return true }

func (c *DetachCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DetachCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: task id and attachment index required")
		return exitcode.UserError
	}
	id := args[0]

	index, err := strconv.Atoi(args[1])
	if err != nil || index < 0 {
		fmt.Fprintf(errOut, "error: invalid attachment index: %s\n", args[1])
		return exitcode.UserError
	}

	if env.Tasks.TaskByID(id) == nil {
		fmt.Fprintf(errOut, "error: task not found: %s\n", id)
		return exitcode.UserError
	}

	if err := env.Tasks.RemoveAttachment(ctx, id, index); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	fmt.Fprintln(out, "ok")
	return exitcode.Success
}
