// Package models defines the data structures produced by an extraction run.
package models

const linkPrefix = "https://wa.me/"

// Record represents one row of the result table.
type Record struct {
	// PhoneNumber is the display form, "+201XXXXXXXXX".
	PhoneNumber string `json:"phone_number"`
	// Link is the WhatsApp chat link, "https://wa.me/201XXXXXXXXX".
	Link string `json:"link"`
	// Completed marks the row as processed. User-editable; never derived
	// from input.
	Completed bool `json:"completed"`
}

// NewRecord builds a Record from a normalized digits-only number
// ("201XXXXXXXXX"). The display form carries the leading plus, the link
// does not.
func NewRecord(digits string) Record {
	return Record{
		PhoneNumber: "+" + digits,
		Link:        linkPrefix + digits,
	}
}
