package models

import "time"

// Boat is a boat listing owned by an account. All descriptive fields are
// optional free-form strings; the record only requires an owner.
type Boat struct {
	BoatID    string `json:"boatId"`
	AccountID string `json:"userId"`

	Pic          string `json:"pic"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Length       string `json:"length"`
	UnitLength   string `json:"unit_lenght"`
	Year         string `json:"year"`
	BoatType     string `json:"boat_type"`
	BoatMaterial string `json:"boat_material"`
	Price        string `json:"price"`
	UnitPrice    string `json:"unit_price"`
	VesselName   string `json:"vessel_name"`
	HomePort     string `json:"home_port"`
	Location     string `json:"location"`
	Published    string `json:"published"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Boat model.
func (b Boat) TableName() string {
	return "boats"
}
