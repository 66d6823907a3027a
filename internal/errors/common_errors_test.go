package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("message with cause", func(t *testing.T) {
		err := NewDataUnavailableError("failed to open file", io.ErrUnexpectedEOF)
		assert.Equal(t, "[DATA_UNAVAILABLE] failed to open file: unexpected EOF", err.Error())
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("message without cause", func(t *testing.T) {
		err := NewSchemaError("duplicate column", nil)
		assert.Equal(t, "[SCHEMA] duplicate column", err.Error())
	})

	t.Run("context accumulates", func(t *testing.T) {
		err := NewConfigError("missing column", nil).WithContext("column", "lead_times")
		assert.Equal(t, "lead_times", err.Context["column"])
	})
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantOK   bool
	}{
		{"config", NewConfigError("no credentials", nil), ErrTypeConfig, true},
		{"wrapped schema", fmt.Errorf("clean: %w", NewSchemaError("dup", nil)), ErrTypeSchema, true},
		{"plain error", errors.New("boom"), "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TypeOf(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantType, got)
			if tt.wantOK {
				assert.True(t, IsType(tt.err, tt.wantType))
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(NewDataUnavailableError("failed to open data file", nil)))
	assert.True(t, IsTransient(NewDataUnavailableError("failed to read worksheet", nil).AsTransient()))
	assert.True(t, IsTransient(fmt.Errorf("fetch: %w", NewDataUnavailableError("reset", nil).AsTransient())))
	assert.False(t, IsTransient(errors.New("boom")))
	assert.False(t, IsTransient(nil))
}
