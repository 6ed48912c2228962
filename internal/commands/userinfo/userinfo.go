// Package userinfo implements the "user info" command.
package userinfo

import (
	"fmt"

	"useradm/internal/cmdregistry"
)

const name = "user info"

// Register adds the user info command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register([]string{"user", "info"}, "get user info", handle)
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
	fmt.Fprintf(ctx.Out, "info about user with uid %d\n", uid)
	return nil
}
