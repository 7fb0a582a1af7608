package graph

import (
	"reflect"
	"testing"

	"github.com/sheetbridge/sheetbridge/internal/tabular"
)

func TestWorkbookRoundTrip(t *testing.T) {
	expected := tabular.Snapshot{
		{"id", "name", "last_modified"},
		{"1", "x", "2026-01-01T00:00:00"},
		{"2", "y", "2026-01-02T00:00:00"},
	}

	b, err := encodeWorkbook(expected, "Data")
	if err != nil {
		t.Fatalf("Unexpected error encoding workbook (%v)", err)
	}

	snapshot, err := decodeWorkbook(b, "Data")
	if err != nil {
		t.Fatalf("Unexpected error decoding workbook (%v)", err)
	}

	if !reflect.DeepEqual(snapshot, expected) {
		t.Errorf("Incorrect snapshot\n   expected: %v\n   got:      %v\n", expected, snapshot)
	}
}

func TestWorkbookRoundTripWithDefaultWorksheet(t *testing.T) {
	expected := tabular.Snapshot{
		{"id", "name"},
		{"1", "x"},
	}

	b, err := encodeWorkbook(expected, "Sheet1")
	if err != nil {
		t.Fatalf("Unexpected error encoding workbook (%v)", err)
	}

	snapshot, err := decodeWorkbook(b, "Sheet1")
	if err != nil {
		t.Fatalf("Unexpected error decoding workbook (%v)", err)
	}

	if !reflect.DeepEqual(snapshot, expected) {
		t.Errorf("Incorrect snapshot\n   expected: %v\n   got:      %v\n", expected, snapshot)
	}
}

func TestDecodeWorkbookPadsShortRows(t *testing.T) {
	expected := tabular.Snapshot{
		{"id", "name", "notes"},
		{"1", "x", ""},
	}

	b, err := encodeWorkbook(tabular.Snapshot{
		{"id", "name", "notes"},
		{"1", "x"},
	}, "Data")
	if err != nil {
		t.Fatalf("Unexpected error encoding workbook (%v)", err)
	}

	snapshot, err := decodeWorkbook(b, "Data")
	if err != nil {
		t.Fatalf("Unexpected error decoding workbook (%v)", err)
	}

	if !reflect.DeepEqual(snapshot, expected) {
		t.Errorf("Incorrect snapshot\n   expected: %v\n   got:      %v\n", expected, snapshot)
	}
}

func TestDecodeWorkbookWithMissingWorksheet(t *testing.T) {
	b, err := encodeWorkbook(tabular.Snapshot{{"id"}}, "Data")
	if err != nil {
		t.Fatalf("Unexpected error encoding workbook (%v)", err)
	}

	if _, err := decodeWorkbook(b, "Other"); err == nil {
		t.Errorf("Expected error decoding missing worksheet, got %v", err)
	}
}

func TestDecodeWorkbookWithInvalidPayload(t *testing.T) {
	if _, err := decodeWorkbook([]byte("not an xlsx file"), "Data"); err == nil {
		t.Errorf("Expected error decoding invalid payload, got %v", err)
	}
}
