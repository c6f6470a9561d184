package util

import (
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformSlice(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, TransformSlice([]int{1, 2, 3}, strconv.Itoa))
	assert.Equal(t, []string{}, TransformSlice([]int{}, strconv.Itoa))
}

func TestCanonicalMapIter(t *testing.T) {
	counts := map[string]int{"db.t": 2, "a": 1, "B": 3, "db.s": 4}

	var keys []string
	var values []int
	for k, v := range CanonicalMapIter(counts) {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []string{"B", "a", "db.s", "db.t"}, keys)
	assert.Equal(t, []int{3, 1, 4, 2}, values)

	var first []string
	for k := range CanonicalMapIter(counts) {
		first = append(first, k)
		break
	}
	assert.Equal(t, []string{"B"}, first)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, ParseLogLevel(input), "%q", input)
	}
}
