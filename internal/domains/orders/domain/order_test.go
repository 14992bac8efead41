package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func validOrder() *Order {
	order, err := NewOrder("Nadia Rahman", "nadia@example.com", "+8801712345678", "12 Green Road, Dhaka", "Passenger Lift PL-600", 2, PaymentBankTransfer)
	if err != nil {
		panic(err)
	}
	return order
}

func TestNewOrder(t *testing.T) {
	order := validOrder()
	require.NotEmpty(t, order.ID)
	require.Equal(t, StatusPending, order.Status)
	require.Equal(t, 2, order.Quantity)
	require.False(t, order.CreatedAt.IsZero())
}

func TestNewOrder_DefaultsQuantity(t *testing.T) {
	order, err := NewOrder("Nadia Rahman", "nadia@example.com", "+880171", "Dhaka", "Escalator ES-30", 0, PaymentCreditCard)
	require.NoError(t, err)
	require.Equal(t, 1, order.Quantity)
}

func TestNewOrder_TrimsInput(t *testing.T) {
	order, err := NewOrder("  Nadia  ", " nadia@example.com ", " +880171 ", " Dhaka ", " Escalator ES-30 ", 1, PaymentCreditCard)
	require.NoError(t, err)
	require.Equal(t, "Nadia", order.Name)
	require.Equal(t, "nadia@example.com", order.Email)
	require.Equal(t, "Escalator ES-30", order.Product)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Order)
		wantErr error
	}{
		{"missing name", func(o *Order) { o.Name = "" }, ErrEmptyName},
		{"missing email", func(o *Order) { o.Email = "" }, ErrEmptyEmail},
		{"missing phone", func(o *Order) { o.Phone = "" }, ErrEmptyPhone},
		{"missing address", func(o *Order) { o.Address = "" }, ErrEmptyAddress},
		{"missing product", func(o *Order) { o.Product = "" }, ErrEmptyProduct},
		{"zero quantity", func(o *Order) { o.Quantity = 0 }, ErrInvalidQuantity},
		{"negative quantity", func(o *Order) { o.Quantity = -3 }, ErrInvalidQuantity},
		{"quantity above cap", func(o *Order) { o.Quantity = MaxQuantity + 1 }, ErrInvalidQuantity},
		{"unknown payment", func(o *Order) { o.PaymentMethod = "cheque" }, ErrInvalidPaymentMethod},
		{"unknown status", func(o *Order) { o.Status = "archived" }, ErrInvalidStatus},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			order := validOrder()
			tc.mutate(order)
			require.ErrorIs(t, order.Validate(), tc.wantErr)
		})
	}
}

func TestValidate_QuantityAtCap(t *testing.T) {
	order := validOrder()
	order.Quantity = MaxQuantity
	require.NoError(t, order.Validate())
}

func TestTransition(t *testing.T) {
	order := validOrder()
	require.NoError(t, order.Transition(StatusConfirmed))
	require.Equal(t, StatusConfirmed, order.Status)

	require.ErrorIs(t, order.Transition(StatusCancelled), ErrTransitionClosed)
	require.Equal(t, StatusConfirmed, order.Status)
}

func TestTransition_CancelThenConfirm(t *testing.T) {
	order := validOrder()
	require.NoError(t, order.Transition(StatusCancelled))
	require.ErrorIs(t, order.Transition(StatusConfirmed), ErrTransitionClosed)
	require.Equal(t, StatusCancelled, order.Status)
}

func TestTransition_RejectsPendingTarget(t *testing.T) {
	order := validOrder()
	require.ErrorIs(t, order.Transition(StatusPending), ErrInvalidStatus)
	require.ErrorIs(t, order.Transition("archived"), ErrInvalidStatus)
	require.Equal(t, StatusPending, order.Status)
}

func TestTransition_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	targets := []Status{StatusPending, StatusConfirmed, StatusCancelled, "archived"}

	for i := 0; i < 200; i++ {
		order := validOrder()
		settled := false
		for j := 0; j < 6; j++ {
			to := targets[rng.Intn(len(targets))]
			err := order.Transition(to)
			switch {
			case to == StatusPending || to == "archived":
				require.ErrorIs(t, err, ErrInvalidStatus)
			case settled:
				require.ErrorIs(t, err, ErrTransitionClosed)
			default:
				require.NoError(t, err)
				require.Equal(t, to, order.Status)
				settled = true
			}
		}
		if settled {
			require.True(t, order.Status.Terminal())
		} else {
			require.Equal(t, StatusPending, order.Status)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	require.False(t, StatusPending.Terminal())
	require.True(t, StatusConfirmed.Terminal())
	require.True(t, StatusCancelled.Terminal())
}
