package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// LinksKey is the key the serialized link mapping is stored under.
const LinksKey = "links"

var (
	// ErrExists is returned when a name is already taken.
	ErrExists = errors.New("name already exists")
	// ErrNotFound is returned when a name has no entry.
	ErrNotFound = errors.New("no such entry")
	// ErrInvalidURL is returned when a URL lacks the http prefix.
	ErrInvalidURL = errors.New("invalid URL (must start with http/https)")
)

// Link is a named bookmark.
type Link struct {
	Name string
	URL  string
}

// DefaultLinks returns the entries used when nothing has been saved yet.
func DefaultLinks() []Link {
	return []Link{
		{Name: "github", URL: "https://github.com"},
		{Name: "leetcode", URL: "https://leetcode.com"},
		{Name: "linkedin", URL: "https://linkedin.com"},
	}
}

// ValidURL reports whether url carries the required "http" prefix.
// Nothing beyond the prefix is checked.
func ValidURL(url string) bool {
	return strings.HasPrefix(url, "http")
}

// LinkStore is the name→URL mapping. It keeps insertion order and writes
// the whole mapping back to its KV after every mutation.
type LinkStore struct {
	kv     KV
	names  []string
	urls   map[string]string
	logger *zap.Logger
}

// LoadLinkStore reads the mapping from kv. An absent or unparseable blob,
// or a failing backend, yields the default entries.
func LoadLinkStore(kv KV, logger *zap.Logger) *LinkStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	ls := &LinkStore{kv: kv, logger: logger}

	raw, ok, err := kv.Get(LinksKey)
	switch {
	case err != nil:
		logger.Warn("reading links failed, using defaults", zap.Error(err))
	case !ok:
		logger.Debug("no saved links, using defaults")
	default:
		links, perr := decodeLinks(raw)
		if perr == nil {
			ls.reset(links)
			return ls
		}
		logger.Warn("saved links are corrupt, using defaults", zap.Error(perr))
	}

	ls.reset(DefaultLinks())
	return ls
}

// Add creates a new entry. The name check runs before the URL check.
func (ls *LinkStore) Add(name, url string) error {
	if _, ok := ls.urls[name]; ok {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	if !ValidURL(url) {
		return ErrInvalidURL
	}

	return ls.mutate(func() {
		ls.names = append(ls.names, name)
		ls.urls[name] = url
	}, zap.String("op", "add"), zap.String("name", name), zap.String("url", url))
}

// Modify replaces the URL of an existing entry.
func (ls *LinkStore) Modify(name, url string) error {
	if _, ok := ls.urls[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if !ValidURL(url) {
		return ErrInvalidURL
	}

	return ls.mutate(func() {
		ls.urls[name] = url
	}, zap.String("op", "modify"), zap.String("name", name), zap.String("url", url))
}

// Rename moves an entry to a new name. The new name goes to the end of
// the order. Both names are checked before anything changes.
func (ls *LinkStore) Rename(oldName, newName string) error {
	url, ok := ls.urls[oldName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, oldName)
	}
	if _, taken := ls.urls[newName]; taken {
		return fmt.Errorf("%w: %s", ErrExists, newName)
	}

	return ls.mutate(func() {
		ls.names = append(ls.names, newName)
		ls.urls[newName] = url
		ls.drop(oldName)
	}, zap.String("op", "rename"), zap.String("name", oldName), zap.String("new_name", newName))
}

// Remove deletes an entry.
func (ls *LinkStore) Remove(name string) error {
	if _, ok := ls.urls[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return ls.mutate(func() {
		ls.drop(name)
	}, zap.String("op", "remove"), zap.String("name", name))
}

// Get returns the URL stored under name.
func (ls *LinkStore) Get(name string) (string, bool) {
	url, ok := ls.urls[name]
	return url, ok
}

// List returns all entries in stored order.
func (ls *LinkStore) List() []Link {
	links := make([]Link, 0, len(ls.names))
	for _, name := range ls.names {
		links = append(links, Link{Name: name, URL: ls.urls[name]})
	}
	return links
}

// Count returns the number of entries.
func (ls *LinkStore) Count() int {
	return len(ls.names)
}

// mutate applies fn and persists the result. If the write fails the
// previous mapping is restored.
func (ls *LinkStore) mutate(fn func(), fields ...zap.Field) error {
	prevNames := append([]string(nil), ls.names...)
	prevURLs := make(map[string]string, len(ls.urls))
	for k, v := range ls.urls {
		prevURLs[k] = v
	}

	fn()

	if err := ls.save(); err != nil {
		ls.names, ls.urls = prevNames, prevURLs
		ls.logger.Error("saving links failed", append(fields, zap.Error(err))...)
		return fmt.Errorf("saving links: %w", err)
	}

	ls.logger.Debug("links saved", append(fields, zap.Int("count", len(ls.names)))...)
	return nil
}

func (ls *LinkStore) save() error {
	data, err := encodeLinks(ls.List())
	if err != nil {
		return err
	}
	return ls.kv.Set(LinksKey, data)
}

func (ls *LinkStore) reset(links []Link) {
	ls.names = make([]string, 0, len(links))
	ls.urls = make(map[string]string, len(links))
	for _, l := range links {
		if _, ok := ls.urls[l.Name]; !ok {
			ls.names = append(ls.names, l.Name)
		}
		ls.urls[l.Name] = l.URL
	}
}

func (ls *LinkStore) drop(name string) {
	delete(ls.urls, name)
	for i, n := range ls.names {
		if n == name {
			ls.names = append(ls.names[:i], ls.names[i+1:]...)
			return
		}
	}
}

// encodeLinks writes links as a JSON object whose members follow slice order.
func encodeLinks(links []Link) (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range links {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(l.Name)
		if err != nil {
			return "", err
		}
		v, err := json.Marshal(l.URL)
		if err != nil {
			return "", err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.String(), nil
}

// decodeLinks parses a JSON object of string members, keeping member order.
// A repeated member keeps its first position and its last value.
func decodeLinks(raw string) ([]Link, error) {
	dec := json.NewDecoder(strings.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("links blob is not an object")
	}

	var links []Link
	pos := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var url *string
		if err := dec.Decode(&url); err != nil {
			return nil, fmt.Errorf("value of %q: %w", name, err)
		}
		if url == nil {
			return nil, fmt.Errorf("value of %q is null", name)
		}
		if i, seen := pos[name]; seen {
			links[i].URL = *url
			continue
		}
		pos[name] = len(links)
		links = append(links, Link{Name: name, URL: *url})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after links object")
	}
	return links, nil
}
