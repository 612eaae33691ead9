package errs_test

import (
	"errors"
	"testing"

	"kirana/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "AB12CD34")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "AB12CD34", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: AB12CD34", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("non-string ID renders plainly", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("attempt", 42)

		assert.Equal(t, "object not found: 42", err.Error())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "AB12CD34", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "AB12CD34", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: AB12CD34 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("phone")

		assert.Equal(t, "phone", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: phone", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("phone", cause)

		assert.Equal(t, "phone", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: phone (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("attempts", 5000, 1, 4096)

		assert.Equal(t, "attempts", err.ParamName)
		assert.Equal(t, 5000, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 4096, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is out of range: 5000 is attempts, min value is 1, max value is 4096", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, "name", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestTransitionNotAllowedError(t *testing.T) {
	t.Run("NewTransitionNotAllowedError", func(t *testing.T) {
		err := errs.NewTransitionNotAllowedError("Pending", "Shipped")

		assert.Equal(t, "Pending", err.From)
		assert.Equal(t, "Shipped", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "transition is not allowed: Pending -> Shipped", err.Error())
		assert.Equal(t, errs.ErrTransitionNotAllowed, err.Unwrap())
	})

	t.Run("NewTransitionNotAllowedErrorWithCause", func(t *testing.T) {
		cause := errors.New("order already left the store")
		err := errs.NewTransitionNotAllowedErrorWithCause("Shipped", "Cancelled", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"transition is not allowed: Shipped -> Cancelled (cause: order already left the store)",
			err.Error())
	})
}

func TestGenerationExhaustedError(t *testing.T) {
	err := errs.NewGenerationExhaustedError(4096)

	assert.Equal(t, 4096, err.Attempts)
	assert.Equal(t, "identifier generation exhausted: after 4096 attempts", err.Error())
	assert.Equal(t, errs.ErrGenerationExhausted, err.Unwrap())
}

func TestPersistenceFailedError(t *testing.T) {
	t.Run("NewPersistenceFailedError", func(t *testing.T) {
		err := errs.NewPersistenceFailedError("create order")

		assert.Equal(t, "create order", err.Op)
		assert.Equal(t, "persistence failed: create order", err.Error())
		assert.Equal(t, errs.ErrPersistenceFailed, err.Unwrap())
	})

	t.Run("NewPersistenceFailedErrorWithCause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := errs.NewPersistenceFailedErrorWithCause("replace items", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "persistence failed: replace items (cause: disk full)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrTransitionNotAllowed)
		require.Error(t, errs.ErrGenerationExhausted)
		require.Error(t, errs.ErrPersistenceFailed)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "transition is not allowed", errs.ErrTransitionNotAllowed.Error())
		assert.Equal(t, "identifier generation exhausted", errs.ErrGenerationExhausted.Error())
		assert.Equal(t, "persistence failed", errs.ErrPersistenceFailed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "AB12CD34"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("phone"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("attempts", 5000, 1, 4096), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewTransitionNotAllowedError("Pending", "Shipped"), errs.ErrTransitionNotAllowed)
		require.ErrorIs(t, errs.NewGenerationExhaustedError(4096), errs.ErrGenerationExhausted)
		require.ErrorIs(t, errs.NewPersistenceFailedError("create order"), errs.ErrPersistenceFailed)
	})
}
