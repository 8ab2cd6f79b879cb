// Package pagestate keeps the UI state of each dashboard page, keyed by page
// name, and persists it through a Backend.
package pagestate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/ukane-philemon/gradeboard/internal/db"
)

// StorageKey is the backend key the whole state document is saved under.
const StorageKey = "app_state"

// State maps a page name to its JSON encoded state.
type State map[string]json.RawMessage

func (st State) clone() State {
	c := make(State, len(st))
	for k, v := range st {
		c[k] = append(json.RawMessage(nil), v...)
	}
	return c
}

// ChangeFunc is called with a copy of the state after every mutation.
type ChangeFunc func(State)

// Store holds the state of every page in memory and writes the whole
// document to its Backend on every mutation. Backend failures are logged and
// never returned.
type Store struct {
	ctx     context.Context
	backend Backend
	logger  log.Logger

	mtx       sync.RWMutex
	state     State
	listeners []ChangeFunc
}

// New returns a Store loaded from backend. A missing or unreadable document
// leaves the store empty.
func New(ctx context.Context, backend Backend, logger log.Logger) *Store {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	s := &Store{
		ctx:     ctx,
		backend: backend,
		logger:  log.With(logger, "component", "pagestate"),
		state:   make(State),
	}
	s.load()
	return s
}

func (s *Store) load() {
	b, found, err := s.backend.GetItem(s.ctx, StorageKey)
	if err != nil {
		level.Warn(s.logger).Log("msg", "failed to load state", "err", err)
		return
	}
	if !found {
		return
	}

	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		level.Warn(s.logger).Log("msg", "discarding corrupt state", "err", err)
		return
	}
	if st != nil {
		s.state = st
	}
}

// OnChange registers fn to be called synchronously after every mutation.
func (s *Store) OnChange(fn ChangeFunc) {
	s.mtx.Lock()
	s.listeners = append(s.listeners, fn)
	s.mtx.Unlock()
}

// Raw returns the saved state of page as JSON.
func (s *Store) Raw(page string) (json.RawMessage, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	v, found := s.state[page]
	if !found || isNull(v) {
		return nil, false
	}
	return append(json.RawMessage(nil), v...), true
}

// Snapshot returns a copy of the state of every page.
func (s *Store) Snapshot() State {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.state.clone()
}

// Get returns the saved state of page decoded as T, or def if page has no
// state or its state cannot be decoded as T. The saved value is returned as
// is and is never merged with def.
func Get[T any](s *Store, page string, def T) T {
	raw, found := s.Raw(page)
	if !found {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		level.Warn(s.logger).Log("msg", "ignoring undecodable page state", "page", page, "err", err)
		return def
	}
	return v
}

// Set replaces the state of page with value.
func (s *Store) Set(page string, value any) error {
	if err := validatePage(page); err != nil {
		return err
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: page state is not serializable: %v", db.ErrorInvalidRequest, err)
	}

	return s.mutate(func(st State) error {
		st[page] = b
		return nil
	})
}

// Update merges the top level fields of partial onto the state of page. A
// page without state, or whose state is not an object, starts from {}.
func (s *Store) Update(page string, partial any) error {
	return s.update(page, partial, nil)
}

// UpdateAs is Update for a page whose state must decode as T. The state is
// left unchanged if the merged state does not.
func UpdateAs[T any](s *Store, page string, partial any) error {
	return s.update(page, partial, func(merged json.RawMessage) error {
		var v T
		if err := json.Unmarshal(merged, &v); err != nil {
			return fmt.Errorf("%w: invalid %s page state: %v", db.ErrorInvalidRequest, page, err)
		}
		return nil
	})
}

func (s *Store) update(page string, partial any, check func(json.RawMessage) error) error {
	if err := validatePage(page); err != nil {
		return err
	}

	fields, err := objectFields(partial)
	if err != nil {
		return err
	}

	return s.mutate(func(st State) error {
		current := make(map[string]json.RawMessage)
		if raw, found := st[page]; found {
			// Non-object state is replaced, not merged.
			if json.Unmarshal(raw, &current) != nil || current == nil {
				current = make(map[string]json.RawMessage)
			}
		}

		for k, v := range fields {
			current[k] = v
		}

		b, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("json.Marshal error: %w", err)
		}

		if check != nil {
			if err := check(b); err != nil {
				return err
			}
		}

		st[page] = b
		return nil
	})
}

// Clear removes the state of page.
func (s *Store) Clear(page string) {
	s.mutate(func(st State) error {
		delete(st, page)
		return nil
	})
}

// ClearAll removes the state of every page and deletes the saved document.
func (s *Store) ClearAll() {
	s.mtx.Lock()
	s.state = make(State)
	if err := s.backend.RemoveItem(s.ctx, StorageKey); err != nil {
		level.Warn(s.logger).Log("msg", "failed to remove saved state", "err", err)
	}
	snapshot, listeners := s.state.clone(), s.listeners
	s.mtx.Unlock()

	notify(listeners, snapshot)
}

// mutate applies fn to the state, saves it and notifies listeners. Nothing is
// saved if fn returns an error. Listeners run after the lock is released and
// may call back into the Store.
func (s *Store) mutate(fn func(State) error) error {
	s.mtx.Lock()
	if err := fn(s.state); err != nil {
		s.mtx.Unlock()
		return err
	}
	s.save()
	snapshot, listeners := s.state.clone(), s.listeners
	s.mtx.Unlock()

	notify(listeners, snapshot)
	return nil
}

// save must be called with the lock held.
func (s *Store) save() {
	b, err := json.Marshal(s.state)
	if err != nil {
		level.Warn(s.logger).Log("msg", "failed to encode state", "err", err)
		return
	}

	if err := s.backend.SetItem(s.ctx, StorageKey, b); err != nil {
		level.Warn(s.logger).Log("msg", "failed to save state", "err", err)
	}
}

func notify(listeners []ChangeFunc, st State) {
	for _, fn := range listeners {
		fn(st)
	}
}

func validatePage(page string) error {
	if strings.TrimSpace(page) == "" {
		return fmt.Errorf("%w: page name is required", db.ErrorInvalidRequest)
	}
	return nil
}

func objectFields(partial any) (map[string]json.RawMessage, error) {
	var b []byte
	switch p := partial.(type) {
	case json.RawMessage:
		b = p
	case []byte:
		b = p
	default:
		var err error
		b, err = json.Marshal(partial)
		if err != nil {
			return nil, fmt.Errorf("%w: page state is not serializable: %v", db.ErrorInvalidRequest, err)
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("%w: partial page state must be an object", db.ErrorInvalidRequest)
	}
	return fields, nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
