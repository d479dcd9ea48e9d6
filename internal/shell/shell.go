// Package shell runs the read-dispatch-append cycle of the bookmark shell.
package shell

import (
	"fmt"
	"strings"

	"github.com/vidyasagar/webhub/internal/browser"
	"github.com/vidyasagar/webhub/internal/command"
	"github.com/vidyasagar/webhub/internal/history"
	"github.com/vidyasagar/webhub/internal/storage"
	"github.com/vidyasagar/webhub/internal/transcript"
	"go.uber.org/zap"
)

// DefaultScope is the first segment of the prompt.
const DefaultScope = "Main"

// aliases are rewritten before command lookup.
var aliases = map[string]string{
	"go": command.Open.String(),
}

// Params configures a Shell.
type Params struct {
	Scope     string
	Links     *storage.LinkStore
	Profile   *storage.Profile
	Navigator command.Navigator // optional, defaults to the system browser
	Logger    *zap.Logger
	Registry  *command.Registry // optional, defaults to the built-in commands
}

// Shell is one session: the link store, username, line history and
// transcript, plus the registry that acts on them.
type Shell struct {
	scope      string
	links      *storage.LinkStore
	profile    *storage.Profile
	history    *history.History
	transcript *transcript.Transcript
	registry   *command.Registry
	env        *command.Env
	logger     *zap.Logger
}

// New creates a Shell with an empty history and transcript.
func New(p Params) *Shell {
	scope := p.Scope
	if scope == "" {
		scope = DefaultScope
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := p.Registry
	if registry == nil {
		registry = command.NewRegistry()
	}
	nav := p.Navigator
	if nav == nil {
		nav = browser.NewOpener(logger)
	}

	s := &Shell{
		scope:      scope,
		links:      p.Links,
		profile:    p.Profile,
		history:    history.New(),
		transcript: transcript.New(),
		registry:   registry,
		logger:     logger,
	}
	s.env = &command.Env{
		Out:     s.transcript,
		Links:   p.Links,
		Profile: p.Profile,
		Nav:     nav,
		Logger:  logger,
	}
	return s
}

// Prompt returns the text shown before the live input line.
func (s *Shell) Prompt() string {
	return fmt.Sprintf("%s:/Users/%s:~$ ", s.scope, s.profile.Username())
}

// Submit freezes input into the transcript, records it in history and,
// unless it is blank, dispatches it.
func (s *Shell) Submit(input string) {
	raw := strings.TrimSpace(input)

	s.transcript.Echo(s.Prompt(), raw)
	s.history.Push(raw)

	if raw == "" {
		return
	}

	inv := Parse(raw)
	name, ok := command.Lookup(inv.Name)
	if !ok {
		s.logger.Debug("unknown command", zap.String("word", inv.Word))
		command.NotFound(s.env, inv.Word)
		return
	}

	if err := s.registry.Execute(name, s.env, inv.Args); err != nil {
		s.logger.Error("dispatch failed", zap.Stringer("name", name), zap.Error(err))
		command.NotFound(s.env, inv.Word)
	}
}

// RecallPrev steps back through history. ok is false when there is
// nothing to recall and the input line should be left alone.
func (s *Shell) RecallPrev() (line string, ok bool) {
	return s.history.Prev()
}

// RecallNext steps forward through history, yielding "" past the newest line.
func (s *Shell) RecallNext() (line string, ok bool) {
	return s.history.Next()
}

// ClearTranscript empties the transcript without going through a command.
func (s *Shell) ClearTranscript() {
	s.transcript.Clear()
}

// Transcript returns the session output log.
func (s *Shell) Transcript() *transcript.Transcript {
	return s.transcript
}

// History returns the session line history.
func (s *Shell) History() *history.History {
	return s.history
}

// Links returns the link store.
func (s *Shell) Links() *storage.LinkStore {
	return s.links
}

// Username returns the name shown in the prompt.
func (s *Shell) Username() string {
	return s.profile.Username()
}

// Scope returns the prompt scope.
func (s *Shell) Scope() string {
	return s.scope
}
