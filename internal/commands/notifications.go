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
	Register(&NotificationsCmd{})
	Register(&SeenCmd{})
}

// NotificationsCmd lists notifications, most recent first. Unseen only by
// default.
type NotificationsCmd struct {
	all bool
}

func (c *NotificationsCmd) Name() string      { return "notifications" }
func (c *NotificationsCmd) Aliases() []string { return []string{"notifs"} }
func (c *NotificationsCmd) Synopsis() string  { return "List notifications" }
func (c *NotificationsCmd) Usage() string     { return "taskdesk notifications [-all]" }
func (c *NotificationsCmd) NeedsAuth() bool   { return true }

func (c *NotificationsCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.all, "all", false, "")
}

func (c *NotificationsCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	printed := 0
	for _, n := range env.Tasks.Notifications() {
		if !c.all && n.Seen {
			continue
		}
		marker := " "
		if !n.Seen {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\t%-7s\t%s\t%s\n", marker, n.ID, n.Type, n.CreatedAt.Format("2006-01-02 15:04"), n.Message)
		printed++
	}

	if printed == 0 {
		fmt.Fprintln(out, "no notifications")
	}
	return exitcode.Success
}

// SeenCmd marks a notification as seen.
type SeenCmd struct{}

func (c *SeenCmd) Name() string      { return "seen" }
func (c *SeenCmd) Aliases() []string { return nil }
func (c *SeenCmd) Synopsis() string  { return "Mark a notification seen" }
func (c *SeenCmd) Usage() string     { return "taskdesk seen <notification-id>" }
func (c *SeenCmd) NeedsAuth() bool   { return true }

func (c *SeenCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SeenCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: notification id required")
		return exitcode.UserError
	}

	if err := env.Tasks.MarkNotificationSeen(ctx, args[0]); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	fmt.Fprintln(out, "ok")
	return exitcode.Success
}
