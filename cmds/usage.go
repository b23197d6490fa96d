package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage(w io.Writer) {
	// aliases share one command; print it once under its first name
	names := make(map[*Command][]string)
	var order []*Command
	for name, command := range e.commands {
		if command == nil {
			continue
		}
		if _, ok := names[command]; !ok {
			order = append(order, command)
		}
		names[command] = append(names[command], name)
	}
	for _, command := range order {
		slices.Sort(names[command])
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	for _, command := range order {
		fmt.Fprint(w, strings.Join(names[command], ", "))
		if command.Description != "" {
			fmt.Fprintf(w, "\t%s", command.Description)
		}
		fmt.Fprintln(w)
	}
}
