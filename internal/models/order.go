package models

import "errors"

// DefaultOrderType is the standard outgoing-order category used when the
// client omits otype.
const DefaultOrderType = "O"

// ErrNoLineItems is returned when an order entry carries neither a products
// array nor the flat single-item fields.
var ErrNoLineItems = errors.New("order has neither a products array nor flat product fields")

// UploadOrdersRequest mirrors the JSON body posted by the mobile client.
type UploadOrdersRequest struct {
	Orders []OrderUpload `json:"orders"`
}

// OrderUpload is one order entry in an upload batch. Two client generations
// are in the field: newer builds send a products array, older builds flatten
// a single line item into the top-level barcode/quantity/rate/mrp fields.
// Both shapes must keep working.
type OrderUpload struct {
	SupplierCode string `json:"supplier_code"`
	OrderDate    string `json:"order_date"`
	UserID       string `json:"userid,omitempty"`
	// Pointer distinguishes an omitted otype from an explicit empty one:
	// only a missing key falls back to DefaultOrderType, a present value is
	// stored verbatim.
	OrderType *string       `json:"otype,omitempty"`
	Products  []ProductLine `json:"products,omitempty"`

	// Flat single-item shape. Pointers distinguish absent from zero.
	Barcode  string   `json:"barcode,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Rate     *float64 `json:"rate,omitempty"`
	MRP      *float64 `json:"mrp,omitempty"`
}

// ProductLine is one line item of an order.
type ProductLine struct {
	Barcode  string  `json:"barcode"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	MRP      float64 `json:"mrp"`
}

// LineItems resolves the two wire shapes into one canonical item list. A
// non-empty products array wins and is used verbatim, in order; otherwise a
// single item is synthesized from the flat fields.
func (o *OrderUpload) LineItems() ([]ProductLine, error) {
	if len(o.Products) > 0 {
		return o.Products, nil
	}
	if o.Barcode == "" || o.Quantity == nil || o.Rate == nil || o.MRP == nil {
		return nil, ErrNoLineItems
	}
	return []ProductLine{{
		Barcode:  o.Barcode,
		Quantity: *o.Quantity,
		Rate:     *o.Rate,
		MRP:      *o.MRP,
	}}, nil
}

// UploadReport carries the before/after accounting of a committed batch.
type UploadReport struct {
	MastersBefore  int64
	MastersAfter   int64
	DetailsBefore  int64
	DetailsAfter   int64
	OrdersInserted int
	ItemsInserted  int
}
