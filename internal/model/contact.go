package model

import "time"

// Contact is a submission made through the contact form.
type Contact struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContact is the insertable shape of a Contact. ID and CreatedAt are
// assigned by the store.
type NewContact struct {
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
}
