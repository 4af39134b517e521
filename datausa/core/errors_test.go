package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelError(t *testing.T) {
	err := NewLevelError("geo", "stat", []string{"nation", "state", "puma", "all"})

	assert.True(t, errors.Is(err, ErrInvalidLevel))
	assert.Equal(t, "state", err.Suggestion)
	assert.Contains(t, err.Error(), `invalid geo level "stat"`)
	assert.Contains(t, err.Error(), `did you mean "state"?`)

	wrapped := fmt.Errorf("resolve filters: %w", err)
	var levelErr *LevelError
	assert.True(t, errors.As(wrapped, &levelErr))
	assert.Equal(t, "stat", levelErr.Level)
}

func TestLevelErrorWithoutSuggestion(t *testing.T) {
	err := NewLevelError("soc", "9", []string{"0", "1", "2", "3", "all"})

	assert.Empty(t, err.Suggestion)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestShowAndTableErrors(t *testing.T) {
	showErr := &ShowError{Table: "pums_1year.yg", Show: "naics", Supported: []string{"geo"}}
	assert.True(t, errors.Is(showErr, ErrUnsupportedShow))
	assert.False(t, errors.Is(showErr, ErrInvalidLevel))

	tableErr := &TableError{Name: "pums_1year.ygx", Suggestion: "pums_1year.ygi"}
	assert.True(t, errors.Is(tableErr, ErrUnknownTable))
	assert.Contains(t, tableErr.Error(), "pums_1year.ygi")
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		candidates []string
		want       string
	}{
		{name: "prefix", input: "nat", candidates: []string{"nation", "state"}, want: "nation"},
		{name: "case", input: "PUM", candidates: []string{"nation", "puma"}, want: "puma"},
		{name: "empty input", input: "", candidates: []string{"nation"}, want: ""},
		{name: "no match", input: "zzz", candidates: []string{"nation"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.input, tt.candidates))
		})
	}
}
