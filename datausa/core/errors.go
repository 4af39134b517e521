package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

var (
	ErrInvalidLevel    = errors.New("invalid level")
	ErrUnsupportedShow = errors.New("unsupported show column")
	ErrUnknownTable    = errors.New("unknown table")
)

// LevelError reports a level key that a show column does not support.
type LevelError struct {
	Show       string
	Level      string
	Supported  []string
	Suggestion string
}

// NewLevelError builds a LevelError, suggesting the closest supported level.
func NewLevelError(show, level string, supported []string) *LevelError {
	return &LevelError{
		Show:       show,
		Level:      level,
		Supported:  supported,
		Suggestion: Suggest(level, supported),
	}
}

func (e *LevelError) Error() string {
	msg := fmt.Sprintf("invalid %s level %q (supported: %s)", e.Show, e.Level, strings.Join(e.Supported, ", "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", e.Suggestion)
	}
	return msg
}

func (e *LevelError) Unwrap() error {
	return ErrInvalidLevel
}

// ShowError reports a show column that is not a dimension of a table.
type ShowError struct {
	Table     string
	Show      string
	Supported []string
}

func (e *ShowError) Error() string {
	return fmt.Sprintf("table %s cannot be shown by %q (supported: %s)", e.Table, e.Show, strings.Join(e.Supported, ", "))
}

func (e *ShowError) Unwrap() error {
	return ErrUnsupportedShow
}

// TableError reports a table name missing from the registry.
type TableError struct {
	Name       string
	Suggestion string
}

func (e *TableError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown table %q, did you mean %q?", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown table %q", e.Name)
}

func (e *TableError) Unwrap() error {
	return ErrUnknownTable
}

// Suggest returns the best fuzzy match for input among candidates, or "".
func Suggest(input string, candidates []string) string {
	if input == "" || len(candidates) == 0 {
		return ""
	}
	matches := fuzzy.Find(strings.ToLower(input), candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
