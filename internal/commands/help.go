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
	Register(&HelpCmd{})
}

// HelpCmd prints usage for all commands, or one command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Show help" }
func (c *HelpCmd) Usage() string     { return "taskdesk help [command]" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	if len(args) == 1 {
		cmd, ok := DefaultRegistry.Find(args[0])
		if !ok {
			fmt.Fprintf(errOut, "error: unknown command: %s\n", args[0])
			return exitcode.UserError
		}
		fmt.Fprintf(out, "%s\n\n  %s\n", cmd.Usage(), cmd.Synopsis())
		return exitcode.Success
	}

	fmt.Fprintln(out, "usage: taskdesk <command> [flags] [args]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "commands:")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-14s %s\n", cmd.Name(), cmd.Synopsis())
	}
	return exitcode.Success
}
