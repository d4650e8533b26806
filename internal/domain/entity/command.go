package entity

import "fmt"

// Command is an abstract switch command produced by the input-mapping layer.
type Command int

const (
	CommandSelect Command = iota
	CommandNext
	CommandPrevious
)

// Commands lists every command in a stable order.
var Commands = []Command{CommandSelect, CommandNext, CommandPrevious}

func (c Command) String() string {
	switch c {
	case CommandSelect:
		return "select"
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// ParseCommand maps a command name to a Command.
func ParseCommand(name string) (Command, error) {
	for _, c := range Commands {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}
