package cmds

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintf(os.Stderr, "usage of %s:\n", os.Args[0])
	printCommands(p.commands, 1)
}

func printCommands(commands map[string]*Command, indent int) {
	// aliases share a *Command, print each only once
	printed := make(map[*Command]bool)

	for _, name := range sortedNames(commands) {
		command := commands[name]
		if printed[command] {
			continue
		}
		printed[command] = true

		names := append([]string{name}, command.Aliases...)
		line := strings.Repeat("  ", indent) + strings.Join(names, " | ")
		if command.Func.IsValid() {
			for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
				line += fmt.Sprintf(" <%v>", command.Func.Type().In(i))
			}
		}
		if command.Description != "" {
			line += "\n" + strings.Repeat("  ", indent+1) + command.Description
		}
		fmt.Fprintln(os.Stderr, line)

		if len(command.Subs) > 0 {
			printCommands(command.Subs, indent+1)
		}
	}
}

func sortedNames(commands map[string]*Command) []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
