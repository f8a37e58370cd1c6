package domain

// Client is a billed organisation. It owns projects.
type Client struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}
