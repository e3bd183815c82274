package models

// Supplier is an acc_master row under super_code 'SUNCR'.
type Supplier struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Place *string `json:"place"`
}

// Product is one row of the product/batch join sent to the mobile client.
// Batch columns are nullable because the join is a LEFT JOIN.
type Product struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Barcode    *string  `json:"barcode"`
	Quantity   *float64 `json:"quantity"`
	SalesPrice *float64 `json:"salesprice"`
	BMRP       *float64 `json:"bmrp"`
	Cost       *float64 `json:"cost"`
}

// DataDownload bundles the reference data for one download call.
type DataDownload struct {
	Suppliers []Supplier `json:"master_data"`
	Products  []Product  `json:"product_data"`
}
