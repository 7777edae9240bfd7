package parser

import (
	"reflect"
	"testing"

	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks/models"
)

func TestBuildTable(t *testing.T) {
	// One column of raw values: a local number, noise, a second number in
	// international form, and a duplicate of the first.
	values := []string{"01012345678", "not a phone", "+201198765432", "01012345678"}

	records := BuildTable(values)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	want := []models.Record{
		{PhoneNumber: "+201012345678", Link: "https://wa.me/201012345678", Completed: false},
		{PhoneNumber: "+201198765432", Link: "https://wa.me/201198765432", Completed: false},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("BuildTable() = %+v, want %+v", records, want)
	}
}

func TestBuildTableDedupAcrossEncodings(t *testing.T) {
	// The same number encoded three ways collapses to one row, sourced
	// from the first occurrence.
	records := BuildTable([]string{"+201012345678", "01012345678", "201012345678"})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].PhoneNumber != "+201012345678" {
		t.Errorf("unexpected phone number %q", records[0].PhoneNumber)
	}
}

func TestBuildTableOrderPreserved(t *testing.T) {
	records := BuildTable([]string{"01512345678", "01012345678", "01198765432"})

	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.PhoneNumber
	}
	want := []string{"+201512345678", "+201012345678", "+201198765432"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("row order = %v, want %v", got, want)
	}
}

func TestBuildTableEmpty(t *testing.T) {
	if got := BuildTable(nil); len(got) != 0 {
		t.Errorf("expected empty result for nil input, got %d records", len(got))
	}
	if got := BuildTable([]string{"", "hello", "12345"}); len(got) != 0 {
		t.Errorf("expected empty result for non-matching input, got %d records", len(got))
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "a\nb", []string{"a", "b"}},
		{"blank lines dropped", "a\n\n  \nb\n", []string{"a", "b"}},
		{"empty", "", nil},
		{"whitespace only", "  \n\t\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitLinesThenBuildTable(t *testing.T) {
	text := "01012345678\n\ncall me at 01511112222 thanks\nnothing here\n"

	records := BuildTable(SplitLines(text))
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].PhoneNumber != "+201511112222" {
		t.Errorf("unexpected phone number %q", records[1].PhoneNumber)
	}
}
