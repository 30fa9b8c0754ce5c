package command

import "slices"

// History is an append-only log of parsed commands.
type History struct {
	cmds []Command
}

// Append records cmd.
func (h *History) Append(cmd Command) {
	h.cmds = append(h.cmds, cmd)
}

// Len returns the number of recorded commands.
func (h *History) Len() int {
	return len(h.cmds)
}

// Commands returns a copy of the log, oldest first.
func (h *History) Commands() []Command {
	return slices.Clone(h.cmds)
}

// Last returns the most recent command.
func (h *History) Last() (Command, bool) {
	if len(h.cmds) == 0 {
		return Command{}, false
	}
	return h.cmds[len(h.cmds)-1], true
}

// Interpreter parses lines and keeps their history. Blank lines are not
// recorded.
type Interpreter struct {
	history History
}

// NewInterpreter returns an interpreter with an empty history.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Parse parses line and records the result.
func (in *Interpreter) Parse(line string) Command {
	cmd := Parse(line)
	if cmd.Action != ActionEmpty {
		in.history.Append(cmd)
	}
	return cmd
}

// History returns the recorded commands.
func (in *Interpreter) History() *History {
	return &in.history
}
