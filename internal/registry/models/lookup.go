package models

// ClientFilter holds the optional lookup criteria. A row matches when any
// set criterion equals its column; a nil criterion never matches anything.
type ClientFilter struct {
	FirstName *string
	LastName  *string
	Email     *string
	Telephone *string
}

// IsEmpty reports whether no criterion is set.
func (f ClientFilter) IsEmpty() bool {
	return f.FirstName == nil && f.LastName == nil && f.Email == nil && f.Telephone == nil
}

// ClientRow is one row of the client/phone left join. Telephone is nil for
// a client without phones.
type ClientRow struct {
	ClientID  int64
	FirstName string
	LastName  string
	Email     string
	Telephone *string
}

// Ptr returns a pointer to v. It is handy for filling ClientChanges and
// ClientFilter literals.
func Ptr[T any](v T) *T {
	return &v
}
