package command

import (
	"errors"
	"fmt"
	"html"

	"github.com/vidyasagar/webhub/internal/storage"
	"go.uber.org/zap"
)

var helpLines = []string{
	"WebHub Terminal – command reference",
	"------------------------------------------------",
	"about                    → about terminal",
	"setname <name>           → change username",
	"cls | clear              → clear screen",
	"add <name> <url>         → add a website",
	"modify <name> <url>      → update a website",
	"remove <name>            → remove a website",
	"rename <old> <new>       → rename a website",
	"open <name> | go <name>  → open a website",
	"ls                       → list websites",
	"ls -l                    → list sites with URLs",
	"------------------------------------------------",
}

var aboutLines = []string{
	`<span class="about-title">Venkie's Terminal Web Hub</span>`,
	`<span class="about-text">A persistent, customizable link hub — store websites with easy names and jump to them instantly.</span>`,
	`<span class="about-text">Type commands, open websites, and navigate your digital world faster than ever.</span>`,
	`<span class="about-divider">-----------------------------------------</span>`,
	`Built with 💜 by <a href="https://share.google/ebXaZiH1tMnnU2JT1" target="_blank" class="about-link">Venkie</a>`,
	`<span class="about-divider">-----------------------------------------</span>`,
}

func help(env *Env, _ []string) {
	for _, line := range helpLines {
		env.Out.Print(line)
	}
	env.Out.Print("")
}

func list(env *Env, args []string) {
	long := len(args) > 0 && args[0] == "-l"
	for _, l := range env.Links.List() {
		if long {
			env.Out.PrintRich(linkHTML(l))
		} else {
			env.Out.Print(l.Name)
		}
	}
	env.Out.Print("")
}

// linkHTML renders an entry as an anchor that opens in a new context.
func linkHTML(l storage.Link) string {
	return fmt.Sprintf(`<a href="%s" target="_blank">%s → %s</a>`,
		html.EscapeString(l.URL), html.EscapeString(l.Name), html.EscapeString(l.URL))
}

func add(env *Env, args []string) {
	defer env.Out.Print("")
	if len(args) < 2 {
		env.Out.Print("Usage: add <name> <url>")
		return
	}
	name, url := args[0], args[1]

	if err := env.Links.Add(name, url); err != nil {
		report(env, err, name)
		return
	}
	env.Out.Print(fmt.Sprintf("Added '%s' to the list", name))
}

func modify(env *Env, args []string) {
	defer env.Out.Print("")
	if len(args) < 2 {
		env.Out.Print("Usage: modify <name> <new_url>")
		return
	}
	name, url := args[0], args[1]

	if err := env.Links.Modify(name, url); err != nil {
		report(env, err, name)
		return
	}
	env.Out.Print(fmt.Sprintf("Updated '%s'", name))
}

func rename(env *Env, args []string) {
	defer env.Out.Print("")
	if len(args) < 2 {
		env.Out.Print("Usage: rename <old_name> <new_name>")
		return
	}
	oldName, newName := args[0], args[1]

	err := env.Links.Rename(oldName, newName)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		report(env, err, oldName)
		return
	case err != nil:
		report(env, err, newName)
		return
	}
	env.Out.Print(fmt.Sprintf("Renamed '%s' to '%s'", oldName, newName))
}

func remove(env *Env, args []string) {
	if len(args) < 1 {
		env.Out.Print("Usage: remove <name>")
		env.Out.Print("")
		return
	}
	name := args[0]

	if err := env.Links.Remove(name); err != nil {
		report(env, err, name)
		if !errors.Is(err, storage.ErrNotFound) {
			env.Out.Print("")
		}
		return
	}
	env.Out.Print(fmt.Sprintf("Removed '%s'", name))
	env.Out.Print("")
}

func open(env *Env, args []string) {
	defer env.Out.Print("")
	if len(args) < 1 {
		env.Out.Print("Usage: open <name>")
		return
	}
	name := args[0]

	url, ok := env.Links.Get(name)
	if !ok {
		env.Out.Print(fmt.Sprintf("No such site: %s", name))
		env.Out.Print("type 'ls' to list sites")
		return
	}

	env.Out.Print(fmt.Sprintf("Opening %s...", name))
	if err := env.Nav.Open(url); err != nil {
		if env.Logger != nil {
			env.Logger.Warn("opening url failed", zap.String("url", url), zap.Error(err))
		}
		env.Out.Print(fmt.Sprintf("Could not open browser: %v", err))
	}
}

func clearScreen(env *Env, _ []string) {
	env.Out.Clear()
}

func setName(env *Env, args []string) {
	if len(args) < 1 {
		env.Out.Print("Usage: setname <username>")
		return
	}

	if err := env.Profile.SetUsername(args[0]); err != nil {
		env.Out.Print(fmt.Sprintf("Could not save: %v", err))
		return
	}
	env.Out.Print(fmt.Sprintf("Username set to '%s'", env.Profile.Username()))
}

func about(env *Env, _ []string) {
	for _, line := range aboutLines {
		env.Out.PrintRich(line)
	}
	env.Out.Print("")
}

// report turns a store error into its transcript line.
func report(env *Env, err error, name string) {
	switch {
	case errors.Is(err, storage.ErrExists):
		env.Out.Print(fmt.Sprintf("Name already exists: %s", name))
	case errors.Is(err, storage.ErrNotFound):
		env.Out.Print(fmt.Sprintf("No such entry: %s", name))
	case errors.Is(err, storage.ErrInvalidURL):
		env.Out.Print("Invalid URL (must start with http/https)")
	default:
		env.Out.Print(fmt.Sprintf("Could not save: %v", err))
	}
}
