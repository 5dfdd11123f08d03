package interfaces

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is wrapped by repositories and services when an id does not
// resolve to a row.
var ErrNotFound = errors.New("not found")

// ValidationError is returned before any persistence is attempted.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// PersistenceError carries a user-facing message naming the entity. The
// underlying cause is kept for logging and is never shown to clients.
type PersistenceError struct {
	Entity string // "Venue", "Artist", "Show"
	Name   string
	Op     string // "create", "update", "delete"
	Err    error
}

func (e *PersistenceError) Error() string {
	subject := e.Entity
	if e.Name != "" {
		subject += " " + e.Name
	}
	switch e.Op {
	case "update":
		return fmt.Sprintf("An error occurred. %s could not be updated.", subject)
	case "delete":
		return fmt.Sprintf("An error occurred deleting %s.", strings.ToLower(e.Entity)+suffix(e.Name))
	case "read":
		return fmt.Sprintf("An error occurred loading %s.", strings.ToLower(e.Entity)+"s")
	default:
		return fmt.Sprintf("An error occurred. %s could not be listed.", subject)
	}
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func suffix(name string) string {
	if name == "" {
		return ""
	}
	return " " + name
}
