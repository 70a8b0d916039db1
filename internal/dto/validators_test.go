package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/biztime/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterOn(v))
	return v
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateCompanyRequest_Validation(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		req     CreateCompanyRequest
		wantErr bool
	}{
		{"valid", CreateCompanyRequest{Code: "apple", Name: "Apple"}, false},
		{"digits and separators", CreateCompanyRequest{Code: "acme-2_b", Name: "Acme"}, false},
		{"missing code", CreateCompanyRequest{Name: "Apple"}, true},
		{"missing name", CreateCompanyRequest{Code: "apple"}, true},
		{"uppercase code", CreateCompanyRequest{Code: "Apple", Name: "Apple"}, true},
		{"space in code", CreateCompanyRequest{Code: "big co", Name: "Big"}, true},
		{"code too long", CreateCompanyRequest{Code: "abcdefghijklmnopqrstuvwxyz0123456", Name: "Long"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInvoiceRequests_Validation(t *testing.T) {
	v := newTestValidator(t)
	paid := true

	assert.NoError(t, v.Struct(CreateInvoiceRequest{CompCode: "apple", Amt: decimalPtr("100")}))
	assert.NoError(t, v.Struct(CreateInvoiceRequest{CompCode: "apple", Amt: decimalPtr("0.01")}))
	assert.Error(t, v.Struct(CreateInvoiceRequest{CompCode: "apple", Amt: decimalPtr("0")}))
	assert.Error(t, v.Struct(CreateInvoiceRequest{CompCode: "apple", Amt: decimalPtr("-3")}))
	assert.Error(t, v.Struct(CreateInvoiceRequest{CompCode: "apple"}))
	assert.NoError(t, v.Struct(CreateInvoiceRequest{CompCode: "apple", Amt: decimalPtr("9999999999.99")}))
	assert.Error(t, v.Struct(CreateInvoiceRequest{CompCode: "apple", Amt: decimalPtr("10000000000")}))
	assert.Error(t, v.Struct(CreateInvoiceRequest{Amt: decimalPtr("10")}))

	assert.NoError(t, v.Struct(UpdateInvoiceRequest{Amt: decimalPtr("200"), Paid: &paid}))
	assert.Error(t, v.Struct(UpdateInvoiceRequest{Amt: decimalPtr("200")}), "paid is required")
	assert.Error(t, v.Struct(UpdateInvoiceRequest{Amt: decimalPtr("1e10"), Paid: &paid}))
}

func TestValidationMessage_UsesJSONNames(t *testing.T) {
	v := newTestValidator(t)

	err := v.Struct(CreateInvoiceRequest{Amt: decimalPtr("-1")})
	require.Error(t, err)

	msg := ValidationMessage(err)
	assert.Contains(t, msg, "comp_code is required")
	assert.Contains(t, msg, "amt must be greater than 0")

	err = v.Struct(CreateInvoiceRequest{CompCode: "apple", Amt: decimalPtr("12345678901.5")})
	require.Error(t, err)
	assert.Equal(t, "amt must be at most 9999999999.99", ValidationMessage(err))
}

func TestToInvoiceDetailResponse_RendersDates(t *testing.T) {
	paidAt := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	detail := &domain.InvoiceDetail{
		ID:       1,
		Amt:      decimal.RequireFromString("100.50"),
		Paid:     true,
		AddDate:  time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		PaidDate: &paidAt,
		Company:  domain.CompanySummary{Code: "apple", Name: "Apple", Description: "maker of tech"},
	}

	body, err := json.Marshal(InvoiceDetailEnvelope{Invoice: ToInvoiceDetailResponse(detail)})
	require.NoError(t, err)

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	inv := got["invoice"]
	assert.Equal(t, "2026-10-19", inv["add_date"])
	assert.Equal(t, "2026-10-19T09:30:00Z", inv["paid_date"])
	assert.Equal(t, "apple", inv["company"].(map[string]any)["code"])
}

func TestToListCompaniesResponse_ProjectsCodeAndName(t *testing.T) {
	res := ToListCompaniesResponse([]domain.Company{{Code: "apple", Name: "Apple", Description: "hidden"}})

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"companies":[{"code":"apple","name":"Apple"}]}`, string(body))

	empty, err := json.Marshal(ToListCompaniesResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"companies":[]}`, string(empty))
}
