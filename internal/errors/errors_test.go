package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/flashcards/internal/errors"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *errors.AppError
		expected string
	}{
		{
			name:     "duplicate",
			err:      errors.NewDuplicateError("flashcard"),
			expected: "DUPLICATE: flashcard already exists",
		},
		{
			name:     "empty",
			err:      errors.NewEmptyError("review"),
			expected: "EMPTY: nothing to review",
		},
		{
			name:     "validation",
			err:      errors.NewValidationError("index", "must be between 1 and 3"),
			expected: "VALIDATION_ERROR: validation failed for index: must be between 1 and 3",
		},
		{
			name:     "not found",
			err:      errors.NewNotFoundError("flashcard", 7),
			expected: "NOT_FOUND: flashcard not found: 7",
		},
		{
			name:     "internal with cause",
			err:      errors.NewInternalError(fmt.Errorf("disk on fire")),
			expected: "INTERNAL_ERROR: internal error (disk on fire)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := errors.NewInternalError(cause)

	assert.True(t, stderrors.Is(err, cause))
}

func TestHasCode(t *testing.T) {
	dup := errors.NewDuplicateError("flashcard")
	wrapped := fmt.Errorf("add: %w", dup)

	assert.True(t, errors.HasCode(dup, errors.ErrCodeDuplicate))
	assert.True(t, errors.HasCode(wrapped, errors.ErrCodeDuplicate))
	assert.False(t, errors.HasCode(wrapped, errors.ErrCodeEmpty))
	assert.False(t, errors.HasCode(stderrors.New("plain"), errors.ErrCodeDuplicate))
	assert.False(t, errors.HasCode(nil, errors.ErrCodeDuplicate))
}
