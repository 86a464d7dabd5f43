package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mcarden/taskdesk/internal/app"
	"github.com/mcarden/taskdesk/internal/exitcode"
)

func init() {
	Register(&FoldersCmd{})
	Register(&AddFolderCmd{})
}

// FoldersCmd lists folders.
type FoldersCmd struct{}

func (c *FoldersCmd) Name() string      { return "folders" }
func (c *FoldersCmd) Aliases() []string { return nil }
func (c *FoldersCmd) Synopsis() string  { return "List folders" }
func (c *FoldersCmd) Usage() string     { return "taskdesk folders" }
func (c *FoldersCmd) NeedsAuth() bool   { return true }

func (c *FoldersCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FoldersCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	folders := env.Folders.Folders()
	if len(folders) == 0 {
		fmt.Fprintln(out, "no folders")
		return exitcode.Success
	}
	for _, f := range folders {
		fmt.Fprintf(out, "%s\t%s\n", f.ID, f.Name)
	}
	return exitcode.Success
}

// AddFolderCmd creates a folder. Duplicate names are rejected here with a
// case-insensitive comparison; the store itself never enforces name
// uniqueness.
type AddFolderCmd struct{}

func (c *AddFolderCmd) Name() string      { return "addfolder" }
func (c *AddFolderCmd) Aliases() []string { return []string{"mkfolder"} }
func (c *AddFolderCmd) Synopsis() string  { return "Create a folder" }
func (c *AddFolderCmd) Usage() string     { return "taskdesk addfolder <name...>" }
func (c *AddFolderCmd) NeedsAuth() bool   { return true }

func (c *AddFolderCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddFolderCmd) Run(ctx context.Context, env *app.Env, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: folder name required")
		return exitcode.UserError
	}

	for _, f := range env.Folders.Folders() {
		if strings.EqualFold(f.Name, name) {
			fmt.Fprintf(errOut, "error: folder already exists: %s\n", f.Name)
			return exitcode.UserError
		}
	}

	folder, err := env.Folders.AddFolder(ctx, name)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	fmt.Fprintf(out, "%s\t%s\n", folder.ID, folder.Name)
	return exitcode.Success
}
