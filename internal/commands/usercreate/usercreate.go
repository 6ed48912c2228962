// Package usercreate implements the "user create" command.
package usercreate

import (
	"fmt"

	"useradm/internal/cmdregistry"
)

const name = "user create"

// Register adds the user create command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register([]string{"user", "create"}, "create a new user", handle)
}

func handle(ctx *cmdregistry.Context) error {
	inv := ctx.Invocation
	// help is globally implicit and never counts as extraneous.
	if extra, ok := inv.Extraneous("uid", "display-name", "email", "help"); ok {
		return &cmdregistry.ExtraOptionError{Command: name, Option: extra}
	}
	uid, ok := inv.Int("uid")
	if !ok {
		return &cmdregistry.MissingOptionError{Command: name, Option: "uid"}
	}
	displayName, ok := inv.String("display-name")
	if !ok {
		return &cmdregistry.MissingOptionError{Command: name, Option: "display-name"}
	}
	email, ok := inv.String("email")
	if !ok {
		return &cmdregistry.MissingOptionError{Command: name, Option: "email"}
	}
	fmt.Fprintf(ctx.Out, "user created with uid %d display-name %s and email %s\n", uid, displayName, email)
	return nil
}
