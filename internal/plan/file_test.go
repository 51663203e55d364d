package plan

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.csv")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestReadFile_AllColumns(t *testing.T) {
	path := writeCSV(t, "Friendly Name,Current Entity ID,New Entity ID\n"+
		"Kitchen,light.kitchen_old,light.kitchen_new\n"+
		",sensor.bare,\n")

	rows, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	want := []Row{
		{FriendlyName: "Kitchen", EntityID: "light.kitchen_old", NewEntityID: "light.kitchen_new"},
		{EntityID: "sensor.bare"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ReadFile() = %+v, want %+v", rows, want)
	}
}

func TestReadFile_OptionalColumnsAbsent(t *testing.T) {
	path := writeCSV(t, "Current Entity ID\nlight.kitchen\n")

	rows, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("ReadFile() returned %d rows, want 1", len(rows))
	}
	if rows[0].FriendlyName != "" || rows[0].NewEntityID != "" {
		t.Errorf("optional columns should default to empty, got %+v", rows[0])
	}
}

func TestReadFile_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "Friendly Name,Current Entity ID,New Entity ID\n")

	_, err := ReadFile(path)
	if !errors.Is(err, ErrNoRows) {
		t.Errorf("ReadFile() error = %v, want ErrNoRows", err)
	}
}

func TestReadFile_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := ReadFile(path)
	if !errors.Is(err, ErrNoRows) {
		t.Errorf("ReadFile() error = %v, want ErrNoRows", err)
	}
}

func TestReadFile_MissingRequiredColumn(t *testing.T) {
	path := writeCSV(t, "Friendly Name,New Entity ID\nKitchen,light.kitchen\n")

	_, err := ReadFile(path)
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("ReadFile() error = %v, want ErrMissingColumn", err)
	}
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Error("ReadFile() expected error for missing file, got nil")
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	rows := []Row{
		{FriendlyName: "Kitchen Light", EntityID: "light.kitchen_old", NewEntityID: "light.kitchen_new"},
		{EntityID: "sensor.no_name", NewEntityID: "sensor.renamed"},
		{FriendlyName: "Comma, Inc.", EntityID: "switch.tricky", NewEntityID: ""},
	}
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteFile(rows, path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() after WriteFile error = %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("round trip = %+v, want %+v", got, rows)
	}
}

func TestWriteFile_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("stale contents\n"), 0600); err != nil {
		t.Fatalf("failed to seed existing file: %v", err)
	}

	rows := []Row{{EntityID: "light.only", NewEntityID: "light.renamed"}}
	if err := WriteFile(rows, path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(got) != 1 || got[0].EntityID != "light.only" {
		t.Errorf("expected file to be overwritten, got %+v", got)
	}
}
