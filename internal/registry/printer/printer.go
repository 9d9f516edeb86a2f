// Package printer renders registry results as human-readable lines.
package printer

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/clientdb/internal/registry/models"
)

// NullText stands for a missing telephone in found rows.
const NullText = "NULL"

type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Deleted confirms a deleted client.
func (p *Printer) Deleted(c *models.DeletedClient) {
	fmt.Fprintf(p.w, "Client %d (%s %s, %s) deleted.\n", c.ID, c.FirstName, c.LastName, c.Email)
}

// DeleteMissed reports a delete that matched no client.
func (p *Printer) DeleteMissed(id int64) {
	fmt.Fprintf(p.w, "Client %d not found, nothing deleted.\n", id)
}

// Rows prints one line per found row, or "Client not found." when there
// are none.
func (p *Printer) Rows(rows []*models.ClientRow) {
	if len(rows) == 0 {
		fmt.Fprintln(p.w, "Client not found.")
		return
	}
	for _, r := range rows {
		tel := NullText
		if r.Telephone != nil {
			tel = *r.Telephone
		}
		fmt.Fprintf(p.w, "%d\t%s\t%s\t%s\t%s\n", r.ClientID, r.FirstName, r.LastName, r.Email, tel)
	}
}

// Client prints a single client and its phones.
func (p *Printer) Client(c *models.Client, phones []*models.Phone) {
	fmt.Fprintf(p.w, "%d\t%s\t%s\t%s\n", c.ID, c.FirstName, c.LastName, c.Email)
	for _, ph := range phones {
		fmt.Fprintf(p.w, "\tphone %d\t%s\n", ph.ID, ph.Telephone)
	}
}

// Line prints a free-form status line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
