package terminal

import (
	"fmt"
	"sort"
	"strings"
)

type registry struct {
	primary map[string]Command
	lookup  map[string]string
}

func newRegistry() *registry {
	return &registry{
		primary: make(map[string]Command),
		lookup:  make(map[string]string),
	}
}

func (r *registry) register(cmd Command) error {
	cmd.Name = strings.ToLower(strings.TrimSpace(cmd.Name))
	if cmd.Name == "" {
		return fmt.Errorf("command registry: empty command name")
	}
	if cmd.Handler == nil {
		return fmt.Errorf("command registry: %q has no handler", cmd.Name)
	}
	if _, ok := r.lookup[cmd.Name]; ok {
		return fmt.Errorf("command registry: duplicate command %q", cmd.Name)
	}

	r.primary[cmd.Name] = cmd
	r.lookup[cmd.Name] = cmd.Name

	for _, alias := range cmd.Aliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias == "" {
			continue
		}
		if _, ok := r.lookup[alias]; ok {
			return fmt.Errorf("command registry: duplicate alias %q", alias)
		}
		r.lookup[alias] = cmd.Name
	}
	return nil
}

func (r *registry) registerAll(cmds []Command) error {
	for _, cmd := range cmds {
		if err := r.register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *registry) resolve(name string) (Command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Command{}, false
	}
	if primary, ok := r.lookup[name]; ok {
		cmd, ok := r.primary[primary]
		return cmd, ok
	}
	return Command{}, false
}

func (r *registry) names() []string {
	out := make([]string, 0, len(r.primary))
	for name := range r.primary {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

type commandGroup struct {
	Category Category
	Commands []Command
}

// groups returns commands bucketed by category in category order, each
// bucket sorted by name. Hidden commands are skipped unless all is set.
func (r *registry) groups(all bool) []commandGroup {
	byCat := make(map[Category][]Command)
	for _, name := range r.names() {
		cmd := r.primary[name]
		if cmd.Hidden && !all {
			continue
		}
		byCat[cmd.Category] = append(byCat[cmd.Category], cmd)
	}

	var out []commandGroup
	for c := CategoryInfo; c <= CategoryHidden; c++ {
		if cmds := byCat[c]; len(cmds) > 0 {
			out = append(out, commandGroup{Category: c, Commands: cmds})
		}
	}
	return out
}
