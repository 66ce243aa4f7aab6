package order_test

import (
	"fmt"
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should keep Unknown as zero value", func(t *testing.T) {
		var s order.Status

		assert.Equal(t, order.Unknown, s)
		require.Error(t, s.Validate())
	})

	t.Run("should list exactly five valid statuses", func(t *testing.T) {
		assert.Equal(t, []order.Status{
			order.Pending,
			order.Processing,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		}, order.AllStatuses())
	})
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		literal  string
		expected order.Status
	}{
		{"PENDING", order.Pending},
		{"PROCESSING", order.Processing},
		{"SHIPPED", order.Shipped},
		{"DELIVERED", order.Delivered},
		{"CANCELLED", order.Cancelled},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should parse %s", tc.literal), func(t *testing.T) {
			s, err := order.ParseStatus(tc.literal)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, s)
			assert.Equal(t, tc.literal, s.String())
		})
	}

	for _, literal := range []string{"", "pending", "Pending", "UNKNOWN", "CANCELED", " PENDING"} {
		t.Run(fmt.Sprintf("should reject %q", literal), func(t *testing.T) {
			s, err := order.ParseStatus(literal)

			require.Error(t, err)
			assert.Equal(t, order.Unknown, s)
			assert.True(t, errs.IsValidation(err))
			assert.Contains(t, err.Error(), "status is invalid")
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.AllStatuses() {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(6), order.Status(100)} {
		t.Run(fmt.Sprintf("should reject %d", int(s)), func(t *testing.T) {
			err := s.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Equal(t, "UNKNOWN", s.String())
		})
	}
}

func TestStatus_TextMarshalling(t *testing.T) {
	t.Run("should marshal valid status", func(t *testing.T) {
		text, err := order.Shipped.MarshalText()

		require.NoError(t, err)
		assert.Equal(t, "SHIPPED", string(text))
	})

	t.Run("should refuse to marshal Unknown", func(t *testing.T) {
		_, err := order.Unknown.MarshalText()

		require.Error(t, err)
	})

	t.Run("should unmarshal literal", func(t *testing.T) {
		var s order.Status

		require.NoError(t, s.UnmarshalText([]byte("DELIVERED")))
		assert.Equal(t, order.Delivered, s)
	})

	t.Run("should keep previous value on bad literal", func(t *testing.T) {
		s := order.Pending

		require.Error(t, s.UnmarshalText([]byte("delivered")))
		assert.Equal(t, order.Pending, s)
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("only Pending accepts payments", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			err := s.ValidateAcceptsPayment()
			if s == order.Pending {
				require.NoError(t, err)
				continue
			}
			require.Error(t, err, s.String())
			assert.True(t, errs.IsConflict(err))
		}
	})

	t.Run("only Pending can be cancelled", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			next, err := s.Cancel()
			if s == order.Pending {
				require.NoError(t, err)
				assert.Equal(t, order.Cancelled, next)
				continue
			}
			require.Error(t, err, s.String())
			assert.True(t, errs.IsConflict(err))
			assert.Equal(t, order.Unknown, next)
		}
	})

	t.Run("only Pending can start processing", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			next, err := s.StartProcessing()
			if s == order.Pending {
				require.NoError(t, err)
				assert.Equal(t, order.Processing, next)
				continue
			}
			require.Error(t, err, s.String())
			assert.True(t, errs.IsConflict(err))
		}
	})
}
