package models

// Provider is a practice or clinician resolved from the directory by access
// code. It is read-only once resolved.
type Provider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}
