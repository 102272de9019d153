// File: registry.go
// Title: Command Registry Implementation
// Description: Implements the name-to-handler registry for the cmdkit
//              interpreter. Registration is strict: names are
//              case-sensitive, matched exactly, and never silently
//              replaced by a later registration.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package registry

import (
	"sort"
	"sync"

	ckerror "github.com/msto63/cmdkit/core/error"
	"github.com/msto63/cmdkit/core/log"
	"github.com/msto63/cmdkit/interp/handler"
	"github.com/msto63/cmdkit/utils/stringx"
)

// ErrExists reports a registration attempt under a name that is already
// taken. Compare with errors.Is; the existing handler is left untouched.
var ErrExists = ckerror.New("command already registered").WithCode(ckerror.CodeExists)

// Registry maps command names to their handlers. Lookup is by exact,
// case-sensitive string match; there is no prefix matching, abbreviation
// expansion, or alias resolution.
type Registry struct {
	handlers map[string]handler.Handler
	logger   *log.Logger
	mutex    sync.RWMutex
}

// Options configures a Registry.
type Options struct {
	// Logger for registry lifecycle events (optional, defaults to the
	// package default logger).
	Logger *log.Logger
}

// New creates a new empty command registry.
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	return &Registry{
		handlers: make(map[string]handler.Handler),
		logger:   opts.Logger.WithField("component", "registry"),
	}
}

// Register inserts a handler under the given name. The name must be
// non-blank and the handler non-nil. A name that is already taken is
// rejected with ErrExists and the existing handler stays active — a
// registration is never silently replaced.
func (r *Registry) Register(name string, h handler.Handler) error {
	if stringx.IsBlank(name) {
		return ckerror.New("command name cannot be blank").
			WithCode(ckerror.CodeValidation)
	}
	if h == nil {
		return ckerror.Newf("handler for command %s cannot be nil", name).
			WithCode(ckerror.CodeValidation)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.handlers[name]; exists {
		r.logger.Warn("Duplicate command registration rejected", log.Fields{
			"command": name,
		})
		return ckerror.Newf("command %s already registered", name).
			WithCode(ckerror.CodeExists)
	}

	r.handlers[name] = h

	r.logger.Debug("Command registered", log.Fields{
		"command":      name,
		"commandCount": len(r.handlers),
	})

	return nil
}

// Lookup returns the handler registered under name. The match is exact and
// case-sensitive.
func (r *Registry) Lookup(name string) (handler.Handler, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	h, ok := r.handlers[name]
	return h, ok
}

// Has returns true if a handler is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the sorted list of registered command names.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.handlers)
}
