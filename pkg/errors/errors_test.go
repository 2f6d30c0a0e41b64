package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/infercast/infercast/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "gpu",
			ID:       "h100-sxm",
		}
		assert.Equal(t, "gpu with ID h100-sxm not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("instance", "p4d.24xlarge")
		assert.Equal(t, "instance with ID p4d.24xlarge not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "parameterCount",
			Message: "must not be negative",
		}
		assert.Equal(t, "validation failed for field parameterCount: must not be negative", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid estimate input",
		}
		assert.Equal(t, "validation failed: invalid estimate input", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("hourlyRate", -1.5, "must not be negative")
		assert.True(t, pkgerrors.IsValidationError(err))
		assert.Contains(t, err.Error(), "hourlyRate")
	})
}

func TestAPIError(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		err := pkgerrors.NewAPIError("huggingface", 429, "too many requests")
		assert.True(t, pkgerrors.IsRateLimited(err))
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("server error maps to unavailable", func(t *testing.T) {
		err := pkgerrors.NewAPIError("huggingface", 503, "service unavailable")
		assert.True(t, pkgerrors.IsUnavailable(err))
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("connection reset")
		err := pkgerrors.WrapAPI("huggingface", 0, base)
		assert.ErrorIs(t, err, base)
	})
}

func TestParseError(t *testing.T) {
	err := pkgerrors.NewParseError("yaml", "gpus.yaml", "bad indentation", nil)
	assert.Equal(t, "parse error in yaml file gpus.yaml: bad indentation", err.Error())
}

func TestWrapHelpers(t *testing.T) {
	assert.Nil(t, pkgerrors.WrapIO("read", "path", nil))
	assert.Nil(t, pkgerrors.WrapParse("json", "file", nil))
	assert.Nil(t, pkgerrors.WrapAPI("source", 0, nil))

	err := pkgerrors.WrapAPI("huggingface", 503, errors.New("bad gateway"))
	assert.True(t, pkgerrors.IsUnavailable(err))
}
