package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanavm/stok-api/internal/application/dto"
)

// Los formularios envían los números como número o como string según el campo
// de origen; la coerción nunca rechaza el cuerpo.

func TestFlexibleInt_NumeroYString(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"número JSON", `{"quantity": 45}`, 45},
		{"string numérico", `{"quantity": "45"}`, 45},
		{"decimal en campo entero se trunca", `{"quantity": "12.7"}`, 12},
		{"decimal JSON se trunca", `{"quantity": 12.7}`, 12},
		{"basura queda en cero", `{"quantity": "abc"}`, 0},
		{"string vacío queda en cero", `{"quantity": ""}`, 0},
		{"null queda en cero", `{"quantity": null}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req dto.UpdateQuantityRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req),
				"la coerción nunca devuelve error de parseo")
			assert.Equal(t, tc.want, req.Quantity.Value)
			assert.True(t, req.Quantity.Set, "el campo vino en el cuerpo")
		})
	}
}

func TestFlexibleInt_AusenteNoMarcaSet(t *testing.T) {
	var req dto.UpdateQuantityRequest
	require.NoError(t, json.Unmarshal([]byte(`{"reason": "SALE"}`), &req))
	assert.False(t, req.Quantity.Set, "ausente y cero son estados distintos")
}

func TestFlexibleDecimal_NumeroYString(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"número JSON", `{"purchasePrice": 22.5}`, "22.5"},
		{"string numérico", `{"purchasePrice": "22.50"}`, "22.5"},
		{"entero", `{"purchasePrice": 110}`, "110"},
		{"basura queda en cero", `{"purchasePrice": "precio"}`, "0"},
		{"null queda en cero", `{"purchasePrice": null}`, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req dto.SaveProductRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.want, req.PurchasePrice.Value.String())
			assert.True(t, req.PurchasePrice.Set)
		})
	}
}

func TestSaveProductRequest_MissingFields(t *testing.T) {
	var req dto.SaveProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Süt 1L", "category": "İçecek"}`), &req))

	missing := req.MissingFields()

	assert.Equal(t, []string{"company", "quantity", "purchasePrice", "sellingPrice", "barcode"}, missing,
		"category e image son opcionales y no aparecen entre los faltantes")
}

func TestSaveProductRequest_CompletoSinFaltantes(t *testing.T) {
	body := `{
		"name": "Tam Yağlı Süt 1L", "company": "Sütaş", "category": "Süt & Kahvaltılık",
		"quantity": "45", "purchasePrice": "22.50", "sellingPrice": 35,
		"barcode": "869012345678"
	}`
	var req dto.SaveProductRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Empty(t, req.MissingFields())

	draft := req.ToDraft()
	assert.Empty(t, draft.ID, "el ID lo asigna el servidor, no el cuerpo")
	assert.Equal(t, 45, draft.Quantity)
	assert.Equal(t, "22.5", draft.PurchasePrice.String())
	assert.Equal(t, "35", draft.SellingPrice.String())
}
