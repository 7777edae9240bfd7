package parser

import (
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks/models"
)

// BuildTable runs the normalizer over values in input order and returns
// one Record per distinct number, Completed false. Values with no valid
// number are skipped; later duplicates of an already-seen number are
// dropped, so row order is the order of first appearance. An input with
// no valid numbers yields an empty slice, not an error.
func BuildTable(values []string) []models.Record {
	seen := make(map[string]struct{})

	var records []models.Record
	for _, value := range values {
		digits, ok := NormalizePhone(value)
		if !ok {
			continue
		}
		if _, dup := seen[digits]; dup {
			continue
		}
		seen[digits] = struct{}{}
		records = append(records, models.NewRecord(digits))
	}
	return records
}
