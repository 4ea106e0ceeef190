package models

// Material is a raw material consumed by an assignment or order.
// Stored inline as part of the owning record; replaced wholesale on update.
type Material struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Weight   string `json:"weight,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit"`
}
