package enginerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessagesAndUnwrap(t *testing.T) {
	cause := errors.New("boom")

	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "StoreCorruptionError",
			err:      &StoreCorruptionError{Path: "store.yaml", Err: cause},
			expected: "classifier store corrupt at store.yaml: boom",
		},
		{
			name:     "StoreWriteError",
			err:      &StoreWriteError{Path: "store.yaml", Err: cause},
			expected: "failed to persist classifier store to store.yaml: boom",
		},
		{
			name:     "InputError",
			err:      &InputError{Source: "items.csv", Err: cause},
			expected: "invalid input from items.csv: boom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.expected)
			assert.ErrorIs(t, tc.err, cause)
		})
	}
}
