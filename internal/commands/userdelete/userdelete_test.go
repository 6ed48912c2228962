package userdelete

import (
	"bytes"
	"errors"
	"testing"

	"useradm/internal/cmdregistry"
	"useradm/internal/options"
)

func invoke(t *testing.T, args ...string) (string, error) {
	t.Helper()
	table := options.NewTable(
		options.Entry{Name: "uid", Kind: options.Int},
		options.Entry{Name: "email", Kind: options.String},
		options.Entry{Name: "help", Kind: options.Presence},
	)
	inv, err := table.Parse(args)
	if err != nil {
		t.Fatal(err)
	}
	r := cmdregistry.New()
	Register(r)
	cmd, ok := r.Lookup([]string{"user", "delete"})
	if !ok {
		t.Fatal("user delete not registered")
	}
	var out bytes.Buffer
	invokeErr := cmd.Invoke(&cmdregistry.Context{Invocation: inv, Out: &out})
	return out.String(), invokeErr
}

func TestDeleteSuccess(t *testing.T) {
	out, err := invoke(t, "--uid=200")
	if err != nil {
		t.Fatal(err)
	}
	if want := "user with uid 200 was deleted\n"; out != want {
		t.Fatalf("output %q, want %q", out, want)
	}
}

func TestDeleteMissingUID(t *testing.T) {
	out, err := invoke(t)
	var missing *cmdregistry.MissingOptionError
	if !errors.As(err, &missing) || missing.Option != "uid" {
		t.Fatalf("err = %v, want missing --uid", err)
	}
	if out != "" {
		t.Fatalf("wrote %q before failing validation", out)
	}
}

func TestDeleteIgnoresHelpFlag(t *testing.T) {
	out, err := invoke(t, "--uid=200", "--help")
	if err != nil {
		t.Fatalf("help flag failed validation: %v", err)
	}
	if want := "user with uid 200 was deleted\n"; out != want {
		t.Fatalf("output %q, want %q", out, want)
	}
}

func TestDeleteExtraOption(t *testing.T) {
	_, err := invoke(t, "--uid=200", "--email=a@b.c")
	var extra *cmdregistry.ExtraOptionError
	if !errors.As(err, &extra) || extra.Option != "email" {
		t.Fatalf("err = %v, want extra --email", err)
	}
}
