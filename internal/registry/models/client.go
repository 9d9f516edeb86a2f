// Package models defines the rows persisted by the client registry and the
// inputs of its partial update and lookup operations.
package models

// Client is a row of the client table.
type Client struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// DeletedClient identifies a client row removed by a delete.
type DeletedClient struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// ClientChanges describes a partial update. A nil field keeps the stored
// value; a non-nil field overwrites it, even with an equal value.
type ClientChanges struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// IsEmpty reports whether no field is set.
func (c ClientChanges) IsEmpty() bool {
	return c.FirstName == nil && c.LastName == nil && c.Email == nil
}
