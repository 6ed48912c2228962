// Command useradm recognizes multi-word subcommands ("user create") from the
// command line, checks the supplied options against the matched command's
// contract, and prints a one-line confirmation.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"useradm/internal/cmdregistry"
	"useradm/internal/commands/usercreate"
	"useradm/internal/commands/userdelete"
	"useradm/internal/commands/userinfo"
	"useradm/internal/config"
	"useradm/internal/options"
)

const progName = "useradm"

func optionTable() *options.Table {
	return options.NewTable(
		options.Entry{Name: "help", Kind: options.Presence, Help: "produce help message"},
		options.Entry{Name: "uid", Kind: options.Int, Help: "user id"},
		options.Entry{Name: "display-name", Kind: options.String, Help: "user display name"},
		options.Entry{Name: "email", Kind: options.String, Help: "user email address"},
	)
}

func buildRegistry() *cmdregistry.Registry {
	r := cmdregistry.New()
	usercreate.Register(r)
	userdelete.Register(r)
	userinfo.Register(r)
	return r
}

func usage(w io.Writer, r *cmdregistry.Registry, t *options.Table) {
	fmt.Fprintf(w, "usage: %s <cmd> [options...]\n", progName)
	fmt.Fprint(w, r.RenderHelp())
	fmt.Fprint(w, t.RenderHelp())
}

func setupLogging(cfg config.Config) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(log.WarnLevel)
		log.Warnf("invalid log level %s, defaulting to warn", cfg.LogLevel)
	}
}

// run is the whole dispatch path; main only binds it to the process. User
// errors exit 2, help and successful commands exit 0.
func run(args []string, out io.Writer) int {
	setupLogging(config.Load())

	table := optionTable()
	registry := buildRegistry()

	inv, err := table.Parse(args)
	if err != nil {
		log.WithError(err).Debug("option parse failed")
		fmt.Fprintln(out, "invalid command")
		usage(out, registry, table)
		return 2
	}
	if inv.Present("help") || (len(inv.Positionals) > 0 && inv.Positionals[0] == "help") {
		usage(out, registry, table)
		return 0
	}
	if len(inv.Positionals) == 0 {
		usage(out, registry, table)
		return 2
	}
	cmd, ok := registry.Lookup(inv.Positionals)
	if !ok {
		fmt.Fprintf(out, "no such command %s\n", strings.Join(inv.Positionals, " "))
		usage(out, registry, table)
		return 2
	}
	log.WithField("command", cmd.MergedText()).Debug("dispatching")
	if err := cmd.Invoke(&cmdregistry.Context{Invocation: inv, Out: out}); err != nil {
		log.WithError(err).Debug("command rejected")
		fmt.Fprintln(out, err.Error())
		usage(out, registry, table)
		return 2
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
