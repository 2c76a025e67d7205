package models

// AddressQuery carries the address fields accepted by the property details
// endpoint. It is built once from the request query string and not modified
// afterwards.
type AddressQuery struct {
	Street string `form:"street"`
	Unit   string `form:"unit"`
	City   string `form:"city"`
	State  string `form:"state"`
	Zip    string `form:"zip"`
}

// PropertyDetails is the response body for a successful lookup.
type PropertyDetails struct {
	HasSepticSystem bool `json:"has_septic_system"`
}
