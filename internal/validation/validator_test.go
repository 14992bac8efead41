package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmit() SubmitOrderRequest {
	return SubmitOrderRequest{
		Name:          "Nadia Rahman",
		Email:         "nadia@example.com",
		Phone:         "+8801712345678",
		Address:       "12 Green Road, Dhaka",
		Product:       "Passenger Lift PL-600",
		PaymentMethod: "bank-transfer",
		Quantity:      2,
	}
}

func TestSubmitOrderRequest(t *testing.T) {
	v := New()
	require.NoError(t, v.Struct(validSubmit()))
}

func TestSubmitOrderRequest_QuantityOmitted(t *testing.T) {
	v := New()
	payload := validSubmit()
	payload.Quantity = 0
	require.NoError(t, v.Struct(payload))
}

func TestSubmitOrderRequest_Invalid(t *testing.T) {
	v := New()
	tests := []struct {
		name   string
		mutate func(*SubmitOrderRequest)
		field  string
	}{
		{"missing name", func(r *SubmitOrderRequest) { r.Name = "" }, "Name"},
		{"bad email", func(r *SubmitOrderRequest) { r.Email = "not-an-email" }, "Email"},
		{"missing product", func(r *SubmitOrderRequest) { r.Product = "" }, "Product"},
		{"unknown payment", func(r *SubmitOrderRequest) { r.PaymentMethod = "cheque" }, "PaymentMethod"},
		{"negative quantity", func(r *SubmitOrderRequest) { r.Quantity = -1 }, "Quantity"},
		{"excess quantity", func(r *SubmitOrderRequest) { r.Quantity = 101 }, "Quantity"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload := validSubmit()
			tc.mutate(&payload)
			err := v.Struct(payload)
			require.Error(t, err)
			fields := ErrorsToMap(err)
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestCreateAdminRequest(t *testing.T) {
	v := New()
	require.NoError(t, v.Struct(CreateAdminRequest{
		Username: "sales-desk",
		Password: "orchestra7",
		Role:     "admin_editor",
	}))

	err := v.Struct(CreateAdminRequest{Username: "sales-desk", Password: "short", Role: "admin_editor"})
	require.Error(t, err)
	assert.Contains(t, ErrorsToMap(err), "Password")

	err = v.Struct(CreateAdminRequest{Username: "sales-desk", Password: "orchestra7", Role: "operator"})
	require.Error(t, err)
	assert.Contains(t, ErrorsToMap(err), "Role")
}

func TestErrorsToMap_NonValidatorError(t *testing.T) {
	fields := ErrorsToMap(assert.AnError)
	require.Contains(t, fields, "request")
}
