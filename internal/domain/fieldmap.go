package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldMap binds the semantic roles the application understands to the opaque
// field keys of the work-schedule table. The store assigns keys like
// "fldT720jVmGMXFURUKL"; which key means "date" differs per deployment, so the
// mapping is configuration, loaded once at startup and passed down explicitly.
//
// Price fields come in two independent pairs: the customer side (what the
// business charges) and the driver side (what the business pays out).
type FieldMap struct {
	Date          string `json:"date"`
	Customer      string `json:"customer"`
	Driver        string `json:"driver"`
	VehicleType   string `json:"vehicleType"`
	VehicleNumber string `json:"vehicleNumber"`
	Pickup        string `json:"pickup"`
	Dropoff       string `json:"dropoff"`
	Description   string `json:"description"`

	CustomerPriceExcl string `json:"customerPriceExcl"`
	CustomerPriceIncl string `json:"customerPriceIncl"`
	DriverPriceExcl   string `json:"driverPriceExcl"`
	DriverPriceIncl   string `json:"driverPriceIncl"`
	VATRate           string `json:"vatRate"`

	Sent        string `json:"sent,omitempty"`
	Approved    string `json:"approved,omitempty"`
	DriverNotes string `json:"driverNotes,omitempty"`
	Attachment  string `json:"attachment,omitempty"`
}

// ParseFieldMap decodes a field map from its JSON representation and
// validates it. Unknown JSON keys are rejected so a typo in the mapping
// file fails loudly at startup instead of silently unbinding a role.
func ParseFieldMap(data []byte) (FieldMap, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var fm FieldMap
	if err := dec.Decode(&fm); err != nil {
		return FieldMap{}, fmt.Errorf("domain.ParseFieldMap: %w", err)
	}
	if err := fm.Validate(); err != nil {
		return FieldMap{}, err
	}
	return fm, nil
}

// Validate checks that every role the core logic depends on is bound.
// Optional roles (sent, approved, driverNotes, attachment) may be empty.
func (fm FieldMap) Validate() error {
	required := map[string]string{
		"date":              fm.Date,
		"customer":          fm.Customer,
		"driver":            fm.Driver,
		"vehicleType":       fm.VehicleType,
		"vehicleNumber":     fm.VehicleNumber,
		"pickup":            fm.Pickup,
		"dropoff":           fm.Dropoff,
		"description":       fm.Description,
		"customerPriceExcl": fm.CustomerPriceExcl,
		"customerPriceIncl": fm.CustomerPriceIncl,
		"driverPriceExcl":   fm.DriverPriceExcl,
		"driverPriceIncl":   fm.DriverPriceIncl,
		"vatRate":           fm.VATRate,
	}
	for role, key := range required {
		if key == "" {
			return Validationf("field map is missing the %q role", role)
		}
	}
	return nil
}

// StoreKey resolves a semantic role name to its store field key.
// Returns ok=false for role names the map does not know, and for optional
// roles left unbound by the deployment.
func (fm FieldMap) StoreKey(role string) (string, bool) {
	keys := map[string]string{
		"date":              fm.Date,
		"customer":          fm.Customer,
		"driver":            fm.Driver,
		"vehicleType":       fm.VehicleType,
		"vehicleNumber":     fm.VehicleNumber,
		"pickup":            fm.Pickup,
		"dropoff":           fm.Dropoff,
		"description":       fm.Description,
		"customerPriceExcl": fm.CustomerPriceExcl,
		"customerPriceIncl": fm.CustomerPriceIncl,
		"driverPriceExcl":   fm.DriverPriceExcl,
		"driverPriceIncl":   fm.DriverPriceIncl,
		"vatRate":           fm.VATRate,
		"sent":              fm.Sent,
		"approved":          fm.Approved,
		"driverNotes":       fm.DriverNotes,
		"attachment":        fm.Attachment,
	}
	key, ok := keys[role]
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// SearchKeys returns the store keys of the fields the free-text search
// matches against: customer, description, driver, vehicle type, vehicle
// number. Order is fixed so search behavior is deterministic.
func (fm FieldMap) SearchKeys() []string {
	return []string{fm.Customer, fm.Description, fm.Driver, fm.VehicleType, fm.VehicleNumber}
}
