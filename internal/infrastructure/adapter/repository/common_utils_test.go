package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("Nil has no classification", func(t *testing.T) {
		assert.Equal(t, ErrorType(""), classifier.Classify(nil))
		assert.False(t, classifier.IsTransientError(nil))
		assert.False(t, classifier.IsDuplicateKeyError(nil))
	})

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"postgres duplicate key", errors.New(`duplicate key value violates unique constraint`), DuplicateKeyError},
		{"connection reset", errors.New("read tcp: connection reset by peer"), TransientError},
		{"timeout", errors.New("i/o timeout"), TransientError},
		{"broken pipe", errors.New("write: broken pipe"), TransientError},
		{"dial failure", errors.New("dial tcp: lookup db: no such host"), ConnectionError},
		{"not null violation", errors.New(`null value in column "venue" violates not-null constraint`), ConstraintError},
		{"unrecognized", errors.New("syntax error at or near"), ErrorType("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}

	t.Run("Duplicate keys are also constraint errors", func(t *testing.T) {
		err := errors.New("duplicate key value")
		assert.True(t, classifier.IsConstraintError(err))
		// Classify prefers the more specific class.
		assert.Equal(t, DuplicateKeyError, classifier.Classify(err))
	})

	t.Run("Transient errors also count as connection errors", func(t *testing.T) {
		assert.True(t, classifier.IsConnectionError(errors.New("unexpected EOF")))
	})
}
