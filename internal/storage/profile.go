package storage

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	// UsernameKey is the key the username is stored under.
	UsernameKey = "username"
	// DefaultUsername is shown until a name is set.
	DefaultUsername = "guest"
)

// Profile holds the displayed username.
type Profile struct {
	kv       KV
	username string
	logger   *zap.Logger
}

// LoadProfile reads the username from kv, falling back to DefaultUsername
// when it is absent, empty or unreadable.
func LoadProfile(kv KV, logger *zap.Logger) *Profile {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Profile{kv: kv, username: DefaultUsername, logger: logger}

	name, ok, err := kv.Get(UsernameKey)
	if err != nil {
		logger.Warn("reading username failed", zap.Error(err))
		return p
	}
	if ok && name != "" {
		p.username = name
	}
	return p
}

// Username returns the current username.
func (p *Profile) Username() string {
	return p.username
}

// SetUsername replaces the username and persists it. No validation is done.
func (p *Profile) SetUsername(name string) error {
	if err := p.kv.Set(UsernameKey, name); err != nil {
		p.logger.Error("saving username failed", zap.String("username", name), zap.Error(err))
		return fmt.Errorf("saving username: %w", err)
	}
	p.username = name
	p.logger.Debug("username saved", zap.String("username", name))
	return nil
}
