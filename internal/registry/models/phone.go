package models

// Phone is a row of the phone table. Each phone belongs to exactly one client.
type Phone struct {
	ID        int64
	ClientID  int64
	Telephone string
}
