package commands

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Command is a subcommand with its own flags and a Run function taking the
// remaining positional arguments after flag parsing.
type Command struct {
	Name    string
	Help    string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Every terminal line is a command:
// the first field selects the subcommand, the rest are its flags and
// positional arguments.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. fs may be nil for commands without flags.
func (r *Registry) Register(name, help string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	r.cmds[name] = &Command{Name: name, Help: help, FlagSet: fs, Run: run}
}

// Parse tokenizes a terminal line into fields. Empty lines return ok=false.
func Parse(line string) (args []string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}
	return fields, true
}

// Execute runs the subcommand in args[0] with args[1:] as its arguments.
// Returns an error for unknown command, parse error, or from Run.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s (try \"help\")", args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// Help returns one "name - help" line per registered command, sorted by name.
func (r *Registry) Help() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name+" - "+r.cmds[name].Help)
	}
	return out
}
