package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	err := New(CodeNotFound, "User not in waitlist")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, "User not in waitlist", err.Error())
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("admit: %w", New(CodeAlreadyExists, "dup"))

	assert.Equal(t, CodeAlreadyExists, CodeOf(wrapped))
	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
	assert.Equal(t, "UNAUTHORIZED", (&Error{Code: CodeUnauthorized}).Error())
}
