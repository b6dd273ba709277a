package lineedit

import "strings"

// Command is one node of a command tree used for tab completion: a name
// plus the flags and subcommands that may follow it on the line. The tree
// is informative only; the editor never executes anything.
type Command struct {
	Name        string
	Flags       []string
	Subcommands []*Command
}

// NewCommand creates a command with the given name.
func NewCommand(name string) *Command {
	return &Command{Name: name}
}

// Flag appends a flag to the command and returns the command for chaining.
func (c *Command) Flag(name string) *Command {
	c.Flags = append(c.Flags, name)
	return c
}

// Sub appends a subcommand and returns the parent for chaining.
func (c *Command) Sub(sub *Command) *Command {
	c.Subcommands = append(c.Subcommands, sub)
	return c
}

// Commands is the set of top-level commands a host understands.
//
//	cmds := lineedit.Commands{
//		lineedit.NewCommand("print"),
//		lineedit.NewCommand("cat").Flag("--help"),
//		lineedit.NewCommand("remote").
//			Sub(lineedit.NewCommand("add")).
//			Sub(lineedit.NewCommand("remove")),
//		lineedit.NewCommand("exit"),
//	}
type Commands []*Command

func (cs Commands) find(name string) *Command {
	for _, c := range cs {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Names returns the top-level command names in definition order.
func (cs Commands) Names() []string {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return names
}

// Complete returns the candidates for the line text before the cursor. The
// last word is treated as the partial word being typed unless the line ends
// in whitespace, in which case a fresh word is being started. Completed
// words select the active command; candidates are then its flags and
// subcommand names, filtered by the partial word.
func (cs Commands) Complete(before string) []string {
	words := Split(before)
	toComplete := ""
	if !EndsInSpace(before) && len(words) > 0 {
		toComplete = words[len(words)-1]
		words = words[:len(words)-1]
	}

	var active *Command
	list := cs
	for _, w := range words {
		if cmd := list.find(w); cmd != nil {
			active = cmd
			list = cmd.Subcommands
		}
		// flags and free arguments do not change the active command
	}

	var options []string
	switch {
	case active != nil:
		options = append(options, active.Flags...)
		for _, sub := range active.Subcommands {
			options = append(options, sub.Name)
		}
	case len(words) == 0:
		options = cs.Names()
	}

	var candidates []string
	for _, opt := range options {
		if strings.HasPrefix(opt, toComplete) {
			candidates = append(candidates, opt)
		}
	}
	return candidates
}

// Provider adapts the command tree to the editor's Provider contract. The
// provider needs more context than the word prefix alone, so it pulls the
// line before the cursor through the given callback at completion time:
//
//	editor := lineedit.NewEditor(nil)
//	editor.SetProvider(cmds.Provider(func() string {
//		text, cursor := editor.Line()
//		return string([]rune(text)[:cursor])
//	}))
func (cs Commands) Provider(lineBeforeCursor func() string) Provider {
	return func(string) ([]string, error) {
		return cs.Complete(lineBeforeCursor()), nil
	}
}
