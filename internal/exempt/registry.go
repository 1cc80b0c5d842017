// Package exempt keeps the set of game account names excluded from enforcement.
package exempt

import (
	"sort"
	"strings"
	"sync"

	"sab_waitlist/internal/apperr"
)

// Registry is a set of normalized account names.
type Registry struct {
	mu    sync.RWMutex
	names map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Normalize case-folds and trims a name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeRequired(name string) (string, error) {
	normalized := Normalize(name)
	if normalized == "" {
		return "", apperr.New(apperr.CodeInvalidArgument, "username is required")
	}
	return normalized, nil
}

// Add inserts the name. Adding an existing name is a no-op.
func (r *Registry) Add(name string) (string, error) {
	normalized, err := normalizeRequired(name)
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	r.names[normalized] = struct{}{}
	r.mu.Unlock()
	return normalized, nil
}

// Remove deletes the name and reports whether it was present.
func (r *Registry) Remove(name string) (normalized string, existed bool, err error) {
	normalized, err = normalizeRequired(name)
	if err != nil {
		return "", false, err
	}
	r.mu.Lock()
	_, existed = r.names[normalized]
	delete(r.names, normalized)
	r.mu.Unlock()
	return normalized, existed, nil
}

// Contains reports membership after normalization.
func (r *Registry) Contains(name string) (string, bool, error) {
	normalized, err := normalizeRequired(name)
	if err != nil {
		return "", false, err
	}
	r.mu.RLock()
	_, ok := r.names[normalized]
	r.mu.RUnlock()
	return normalized, ok, nil
}

// List returns all names sorted lexicographically.
func (r *Registry) List() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.names))
	for name := range r.names {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}
