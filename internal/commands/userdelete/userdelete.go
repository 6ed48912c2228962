// Package userdelete implements the "user delete" command.
package userdelete

import (
	"fmt"

	"useradm/internal/cmdregistry"
)

const name = "user delete"

// Register adds the user delete command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register([]string{"user", "delete"}, "delete a user", handle)
}

func handle(ctx *cmdregistry.Context) error {
	inv := ctx.Invocation
	// help is globally implicit and never counts as extraneous.
	if extra, ok := inv.Extraneous("uid", "help"); ok {
		return &cmdregistry.ExtraOptionError{Command: name, Option: extra}
	}
	uid, ok := inv.Int("uid")
	if !ok {
		return &cmdregistry.MissingOptionError{Command: name, Option: "uid"}
	}
	fmt.Fprintf(ctx.Out, "user with uid %d was deleted\n", uid)
	return nil
}
