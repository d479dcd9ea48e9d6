// Package command holds the fixed set of shell commands and the
// capabilities they act through.
package command

import (
	"fmt"

	"github.com/vidyasagar/webhub/internal/storage"
	"go.uber.org/zap"
)

// Sink receives command output.
type Sink interface {
	Print(text string)
	PrintRich(html string)
	Clear()
}

// Navigator opens a URL in a new browsing context.
type Navigator interface {
	Open(url string) error
}

// Env is what a handler may touch.
type Env struct {
	Out     Sink
	Links   *storage.LinkStore
	Profile *storage.Profile
	Nav     Navigator
	Logger  *zap.Logger
}

// Name identifies a command.
type Name int

const (
	Help Name = iota
	List
	Add
	Modify
	Remove
	Rename
	Open
	Cls
	Clear
	SetName
	About
)

var names = [...]string{
	Help:    "help",
	List:    "ls",
	Add:     "add",
	Modify:  "modify",
	Remove:  "remove",
	Rename:  "rename",
	Open:    "open",
	Cls:     "cls",
	Clear:   "clear",
	SetName: "setname",
	About:   "about",
}

// String returns the word that invokes the command.
func (n Name) String() string {
	if n < 0 || int(n) >= len(names) {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return names[n]
}

// Lookup resolves an already-lowercased command word.
func Lookup(word string) (Name, bool) {
	for i, s := range names {
		if s == word {
			return Name(i), true
		}
	}
	return 0, false
}

// All returns every command in declaration order.
func All() []Name {
	all := make([]Name, len(names))
	for i := range names {
		all[i] = Name(i)
	}
	return all
}

// Handler runs a command with lowercased arguments.
type Handler func(env *Env, args []string)

// Registry maps every Name to its handler.
type Registry struct {
	handlers map[Name]Handler
}

// NewRegistry returns a registry with the built-in handlers.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[Name]Handler, len(names))}
	r.Handle(Help, help)
	r.Handle(List, list)
	r.Handle(Add, add)
	r.Handle(Modify, modify)
	r.Handle(Remove, remove)
	r.Handle(Rename, rename)
	r.Handle(Open, open)
	r.Handle(Cls, clearScreen)
	r.Handle(Clear, clearScreen)
	r.Handle(SetName, setName)
	r.Handle(About, about)
	return r
}

// Handle installs h for n, replacing any previous handler.
func (r *Registry) Handle(n Name, h Handler) {
	r.handlers[n] = h
}

// Execute runs the handler for n.
func (r *Registry) Execute(n Name, env *Env, args []string) error {
	h, ok := r.handlers[n]
	if !ok {
		return fmt.Errorf("no handler for %s", n)
	}
	if env.Logger != nil {
		env.Logger.Debug("command", zap.Stringer("name", n), zap.Strings("args", args))
	}
	h(env, args)
	return nil
}

// NotFound reports an unknown command word, shown as the user typed it.
func NotFound(env *Env, word string) {
	env.Out.Print(fmt.Sprintf("command not found: %s", word))
	env.Out.Print("type 'help' for a list of commands")
	env.Out.Print("")
}
