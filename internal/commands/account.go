package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/mcarden/taskdesk/internal/app"
	"github.com/mcarden/taskdesk/internal/credential"
	"github.com/mcarden/taskdesk/internal/exitcode"
	"github.com/mcarden/taskdesk/internal/model"
	"github.com/mcarden/taskdesk/internal/store"
)

func init() {
	Register(&RegisterCmd{})
	Register(&LoginCmd{})
	Register(&LogoutCmd{})
	Register(&WhoamiCmd{})
}

// RegisterCmd implements the register command.
type RegisterCmd struct{}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return nil }
func (c *RegisterCmd) Synopsis() string  { return "Create an account and sign in" }
func (c *RegisterCmd) Usage() string     { return "taskdesk register <name> <email> <password>" }
func (c *RegisterCmd) NeedsAuth() bool   { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RegisterCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	if len(args) != 3 {
		fmt.Fprintln(errOut, "error: name, email, and password required")
		return exitcode.UserError
	}

	candidate := model.User{Name: args[0], Email: args[1], Password: args[2]}
	if err := env.Accounts.Register(ctx, candidate); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	fmt.Fprintf(out, "registered and logged in as %s\n", candidate.Email)
	return exitcode.Success
}

// LoginCmd implements the login command.
type LoginCmd struct {
	remember bool
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Sign in" }
func (c *LoginCmd) Usage() string     { return "taskdesk login [-remember] [<email> <password>]" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.remember, "remember", false, "")
}

func (c *LoginCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	var email, password string

	switch len(args) {
	case 2:
		email, password = args[0], args[1]
	case 0:
		// Fall back to credentials remembered in the system keyring.
		saved, err := credential.LoadLogin()
		if err != nil {
			fmt.Fprintln(errOut, "error: email and password required (no remembered login)")
			return exitcode.UserError
		}
		email, password = saved.Email, saved.Password
	default:
		fmt.Fprintln(errOut, "error: email and password required")
		return exitcode.UserError
	}

	if err := env.Accounts.Login(ctx, email, password); err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if c.remember {
		if err := credential.SaveLogin(credential.SavedLogin{Email: email, Password: password}); err != nil {
			fmt.Fprintf(errOut, "warning: could not remember login: %v\n", err)
		}
	}

	fmt.Fprintf(out, "logged in as %s\n", email)
	return exitcode.Success
}

// LogoutCmd implements the logout command.
type LogoutCmd struct {
	forget bool
}

func (c *LogoutCmd) Name() string      { return "logout" }
func (c *LogoutCmd) Aliases() []string { return nil }
func (c *LogoutCmd) Synopsis() string  { return "Clear the current session" }
func (c *LogoutCmd) Usage() string     { return "taskdesk logout [-forget]" }
func (c *LogoutCmd) NeedsAuth() bool   { return false }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.forget, "forget", false, "")
}

func (c *LogoutCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	if err := env.Accounts.Logout(ctx); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if c.forget {
		if err := credential.ClearLogin(); err != nil {
			fmt.Fprintf(errOut, "warning: could not clear remembered login: %v\n", err)
		}
	}

	fmt.Fprintln(out, "logged out")
	return exitcode.Success
}

// WhoamiCmd prints the current session user.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Show the logged-in user" }
func (c *WhoamiCmd) Usage() string     { return "taskdesk whoami" }
func (c *WhoamiCmd) NeedsAuth() bool   { return false }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	u := env.Accounts.Current()
	if u == nil {
		fmt.Fprintln(out, "not logged in")
		return exitcode.Success
	}
	fmt.Fprintf(out, "%s <%s>\n", u.Name, u.Email)
	return exitcode.Success
}
