package models

// Table is the ordered, deduplicated result of one extraction run. Rows
// are keyed by PhoneNumber. The table is mutable so a UI can toggle the
// Completed flag and add or remove rows after extraction; it carries no
// locking of its own.
type Table struct {
	records []Record
}

// NewTable wraps records in a Table. The caller is responsible for
// records already being deduplicated by PhoneNumber.
func NewTable(records []Record) *Table {
	return &Table{records: records}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.records) }

// Records returns a copy of the rows in table order. The copy is never
// nil, so an empty table serializes as an empty list.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// SetCompleted sets the Completed flag of the row with the given display
// number. It reports whether the row exists.
func (t *Table) SetCompleted(phoneNumber string, completed bool) bool {
	for i := range t.records {
		if t.records[i].PhoneNumber == phoneNumber {
			t.records[i].Completed = completed
			return true
		}
	}
	return false
}

// Add appends a row. It reports false without modifying the table when a
// row with the same PhoneNumber already exists.
func (t *Table) Add(r Record) bool {
	for i := range t.records {
		if t.records[i].PhoneNumber == r.PhoneNumber {
			return false
		}
	}
	t.records = append(t.records, r)
	return true
}

// Remove deletes the row with the given display number, preserving the
// order of the remaining rows. It reports whether a row was removed.
func (t *Table) Remove(phoneNumber string) bool {
	for i := range t.records {
		if t.records[i].PhoneNumber == phoneNumber {
			t.records = append(t.records[:i], t.records[i+1:]...)
			return true
		}
	}
	return false
}
