package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestLineItemsFlatShape(t *testing.T) {
	order := OrderUpload{
		SupplierCode: "S1",
		OrderDate:    "2024-01-01",
		Barcode:      "B1",
		Quantity:     f(2),
		Rate:         f(10.0),
		MRP:          f(15.0),
	}

	items, err := order.LineItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ProductLine{Barcode: "B1", Quantity: 2, Rate: 10.0, MRP: 15.0}, items[0])
}

func TestLineItemsArrayShape(t *testing.T) {
	order := OrderUpload{
		SupplierCode: "S1",
		OrderDate:    "2024-01-01",
		Products: []ProductLine{
			{Barcode: "B1", Quantity: 1, Rate: 5, MRP: 6},
			{Barcode: "B2", Quantity: 2, Rate: 7, MRP: 8},
		},
	}

	items, err := order.LineItems()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "B1", items[0].Barcode)
	assert.Equal(t, "B2", items[1].Barcode)
}

func TestLineItemsArrayWinsOverFlatFields(t *testing.T) {
	// A non-empty products array is used verbatim; flat fields are ignored.
	order := OrderUpload{
		Products: []ProductLine{{Barcode: "B-ARRAY", Quantity: 3, Rate: 1, MRP: 2}},
		Barcode:  "B-FLAT",
		Quantity: f(99),
		Rate:     f(99),
		MRP:      f(99),
	}

	items, err := order.LineItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "B-ARRAY", items[0].Barcode)
}

func TestLineItemsNeitherShape(t *testing.T) {
	tests := []struct {
		name  string
		order OrderUpload
	}{
		{"empty entry", OrderUpload{SupplierCode: "S1"}},
		{"missing barcode", OrderUpload{Quantity: f(1), Rate: f(1), MRP: f(1)}},
		{"missing quantity", OrderUpload{Barcode: "B1", Rate: f(1), MRP: f(1)}},
		{"missing rate", OrderUpload{Barcode: "B1", Quantity: f(1), MRP: f(1)}},
		{"missing mrp", OrderUpload{Barcode: "B1", Quantity: f(1), Rate: f(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.order.LineItems()
			assert.ErrorIs(t, err, ErrNoLineItems)
		})
	}
}

func TestOrderUploadDecodesBothWireShapes(t *testing.T) {
	flat := `{"supplier_code":"S1","order_date":"2024-01-01","barcode":"B1","quantity":2,"rate":10.0,"mrp":15.0}`
	var order OrderUpload
	require.NoError(t, json.Unmarshal([]byte(flat), &order))
	assert.Nil(t, order.OrderType)
	items, err := order.LineItems()
	require.NoError(t, err)
	assert.Equal(t, []ProductLine{{Barcode: "B1", Quantity: 2, Rate: 10.0, MRP: 15.0}}, items)

	array := `{"supplier_code":"S1","order_date":"2024-01-01","otype":"P","products":[{"barcode":"B2","quantity":1,"rate":3,"mrp":4}]}`
	order = OrderUpload{}
	require.NoError(t, json.Unmarshal([]byte(array), &order))
	require.NotNil(t, order.OrderType)
	assert.Equal(t, "P", *order.OrderType)
	items, err = order.LineItems()
	require.NoError(t, err)
	assert.Equal(t, "B2", items[0].Barcode)
}
