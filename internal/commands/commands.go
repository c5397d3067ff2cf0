package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds     map[string]*Command
	fallback string
}

// NewRegistry returns an empty command registry. fallback names the command run when
// no subcommand is given.
func NewRegistry(fallback string) *Registry {
	return &Registry{cmds: make(map[string]*Command), fallback: fallback}
}

// Register adds a subcommand. fs is that command's FlagSet; run is called after
// fs.Parse succeeds.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Execute runs the subcommand in args[0] with args[1:] as flag arguments. Empty args, or
// args starting with a flag, run the fallback command.
func (r *Registry) Execute(args []string) error {
	name := r.fallback
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		name, args = args[0], args[1:]
	}
	cmd, ok := r.cmds[name]
	if !ok {
		return errors.Errorf("unknown command: %s", name)
	}
	if err := cmd.FlagSet.Parse(args); err != nil {
		return err
	}
	return cmd.Run()
}

// Usage writes one line per command, sorted by name.
func (r *Registry) Usage(w io.Writer) {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-8s %s\n", name, r.cmds[name].Summary)
	}
}
