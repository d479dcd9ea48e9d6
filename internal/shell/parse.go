package shell

import "strings"

// Invocation is a tokenized input line.
type Invocation struct {
	Word string   // first token as typed, used in error messages
	Name string   // lowercased command word with aliases resolved
	Args []string // remaining tokens, lowercased
}

// Parse splits line on single spaces. Runs of spaces are not collapsed,
// so "add  x" has an empty first argument.
func Parse(line string) Invocation {
	parts := strings.Split(line, " ")

	name := strings.ToLower(parts[0])
	if target, ok := aliases[name]; ok {
		name = target
	}

	args := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		args = append(args, strings.ToLower(p))
	}

	return Invocation{Word: parts[0], Name: name, Args: args}
}
