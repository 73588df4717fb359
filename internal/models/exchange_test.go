package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeApplyAction(t *testing.T) {
	t.Parallel()

	t.Run("Accept", func(t *testing.T) {
		e := Exchange{Status: ExchangeStatusPending}
		require.NoError(t, e.ApplyAction(ActionAccept))
		assert.Equal(t, ExchangeStatusAccepted, e.Status)
	})

	t.Run("Reject", func(t *testing.T) {
		e := Exchange{Status: ExchangeStatusPending}
		require.NoError(t, e.ApplyAction(ActionReject))
		assert.Equal(t, ExchangeStatusRejected, e.Status)
	})

	t.Run("Unknown Action Leaves Status Unchanged", func(t *testing.T) {
		e := Exchange{Status: ExchangeStatusPending}
		err := e.ApplyAction("cancel")

		require.Error(t, err)
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, CodeInvalidAction, appErr.Code)
		assert.Equal(t, "action", appErr.Field)
		assert.Equal(t, ExchangeStatusPending, e.Status)
	})

	t.Run("Terminal Status Can Be Overwritten", func(t *testing.T) {
		e := Exchange{Status: ExchangeStatusAccepted}
		require.NoError(t, e.ApplyAction(ActionReject))
		assert.Equal(t, ExchangeStatusRejected, e.Status)
	})
}
