// Package terminal is a small command registry for debug actions. Systems
// bind named actions at construction time; input handling or a console front
// end executes them by name.
package terminal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type action struct {
	description string
	fn          interface{}
}

type Terminal struct {
	actions map[string]action
}

func New() *Terminal {
	return &Terminal{actions: map[string]action{}}
}

// BindAction registers a named action. Supported handler signatures are
// func(), func(int) and func(string).
func (t *Terminal) BindAction(name, description string, fn interface{}) error {
	switch fn.(type) {
	case func(), func(int), func(string):
	default:
		return fmt.Errorf("terminal: unsupported handler signature for %q", name)
	}

	t.actions[name] = action{description: description, fn: fn}
	return nil
}

// Execute parses a command line ("name [arg]") and runs the bound action.
func (t *Terminal) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("terminal: empty command")
	}

	a, ok := t.actions[fields[0]]
	if !ok {
		return fmt.Errorf("terminal: unknown command %q", fields[0])
	}

	switch fn := a.fn.(type) {
	case func():
		fn()
	case func(int):
		if len(fields) < 2 {
			return fmt.Errorf("terminal: %s requires an integer argument", fields[0])
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("terminal: %s: %w", fields[0], err)
		}
		fn(n)
	case func(string):
		if len(fields) < 2 {
			return fmt.Errorf("terminal: %s requires an argument", fields[0])
		}
		fn(fields[1])
	}

	return nil
}

// Actions returns the bound command names, sorted, with descriptions.
func (t *Terminal) Actions() []string {
	out := make([]string, 0, len(t.actions))
	for name, a := range t.actions {
		out = append(out, fmt.Sprintf("%s - %s", name, a.description))
	}
	sort.Strings(out)
	return out
}
