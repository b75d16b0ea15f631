package errorwrapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "wrap nil error",
			originalError:   nil,
			message:         "wrapper message",
			expectedMessage: "wrapper message: <nil>",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			assert.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
		})
	}
}

func TestWrapError_PreservesChain(t *testing.T) {
	wrapped := WrapError(ErrReportExists, "failed to create report")
	assert.ErrorIs(t, wrapped, ErrReportExists)
}

func TestNewError(t *testing.T) {
	err := NewError("error with value: %d", 42)
	assert.Equal(t, "error with value: 42", err.Error())
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name            string
		field           string
		value           interface{}
		message         string
		expectedMessage string
	}{
		{
			name:            "string field validation",
			field:           "api_base_url",
			value:           "not a url",
			message:         "must be an absolute URL",
			expectedMessage: "validation error: field 'api_base_url' with value 'not a url': must be an absolute URL",
		},
		{
			name:            "numeric field validation",
			field:           "max_results_per_query",
			value:           -5,
			message:         "must be positive",
			expectedMessage: "validation error: field 'max_results_per_query' with value '-5': must be positive",
		},
		{
			name:            "nil value validation",
			field:           "queries",
			value:           nil,
			message:         "cannot be nil",
			expectedMessage: "validation error: field 'queries' with value '<nil>': cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validationErr := NewValidationError(tt.field, tt.value, tt.message)

			assert.Error(t, validationErr)
			assert.Equal(t, tt.expectedMessage, validationErr.Error())
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, tt.value, validationErr.Value)
			assert.ErrorIs(t, validationErr, ErrInvalidConfiguration)
		})
	}
}
