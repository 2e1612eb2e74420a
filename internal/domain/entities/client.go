package entities

// Client is a billed customer. Region selects the default tax rate for its invoices.
type Client struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Region  string        `json:"region"`
	Contact ClientContact `json:"contact"`
}
