package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nerrad567/ha-entity-renamer/internal/plan"
)

func TestAlignColumn(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{
			name:   "pads shorter prefixes to the widest",
			values: []string{"a.bc", "abc.d", "x"},
			want:   []string{"  a.bc", "abc.d", "x"},
		},
		{
			name:   "no markers leaves column untouched",
			values: []string{"abc", "de", ""},
			want:   []string{"abc", "de", ""},
		},
		{
			name:   "only first marker counts",
			values: []string{"a.b.c", "long.x"},
			want:   []string{"   a.b.c", "long.x"},
		},
		{
			name:   "empty prefix pads fully",
			values: []string{".leading", "ab.c"},
			want:   []string{"  .leading", "ab.c"},
		},
		{
			name:   "empty column",
			values: []string{},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlignColumn(tt.values)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AlignColumn(%q) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestAlignColumn_DoesNotMutateInput(t *testing.T) {
	values := []string{"a.b", "long.c"}
	AlignColumn(values)
	if values[0] != "a.b" {
		t.Errorf("AlignColumn mutated its input: %q", values[0])
	}
}

func TestTable_HeaderAndRows(t *testing.T) {
	rows := []plan.Row{
		{FriendlyName: "Kitchen", EntityID: "light.kitchen_old", NewEntityID: "light.kitchen_new"},
		{EntityID: "sensor.temp"},
	}

	out := Table(rows)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("Table() produced %d lines, want 4 (header, rule, 2 rows):\n%s", len(lines), out)
	}

	for _, want := range []string{"Friendly Name", "Current Entity ID", "New Entity ID"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("header line %q missing column %q", lines[0], want)
		}
	}
	if !strings.HasPrefix(lines[1], "|-") {
		t.Errorf("separator line = %q, want markdown rule", lines[1])
	}
	if !strings.Contains(lines[2], "light.kitchen_old") || !strings.Contains(lines[2], "light.kitchen_new") {
		t.Errorf("row line %q missing entity IDs", lines[2])
	}

	// Every line has the same width so the table is a clean block.
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != len(lines[0]) {
			t.Errorf("line %d width = %d, want %d:\n%s", i, len(lines[i]), len(lines[0]), out)
		}
	}
}

func TestTable_AlignsEntityIDColumn(t *testing.T) {
	rows := []plan.Row{
		{EntityID: "light.kitchen"},
		{EntityID: "binary_sensor.door"},
	}

	out := Table(rows)

	// The shorter domain is padded so both dots line up.
	if !strings.Contains(out, "        light.kitchen") {
		t.Errorf("expected dot-aligned entity IDs, got:\n%s", out)
	}

	kitchen := strings.Index(out, "light.kitchen")
	door := strings.Index(out, "binary_sensor.door")
	if kitchen == -1 || door == -1 {
		t.Fatalf("expected both entity IDs in output:\n%s", out)
	}
	lineOf := func(pos int) string {
		start := strings.LastIndex(out[:pos], "\n") + 1
		return out[start:pos]
	}
	dotKitchen := len(lineOf(kitchen)) + len("light")
	dotDoor := len(lineOf(door)) + len("binary_sensor")
	if dotKitchen != dotDoor {
		t.Errorf("dot columns differ: %d vs %d:\n%s", dotKitchen, dotDoor, out)
	}
}

func TestTable_EmptyPlan(t *testing.T) {
	out := Table(nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("Table(nil) produced %d lines, want header and rule only:\n%s", len(lines), out)
	}
}
