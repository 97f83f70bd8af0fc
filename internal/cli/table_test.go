package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Name", "Age", "City"})
	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRowNormalises(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})
	table.AddRow([]string{"Alice", "30"})
	table.AddRow([]string{"Bob"})
	table.AddRow([]string{"Charlie", "25", "Extra"})

	want := [][]string{{"Alice", "30"}, {"Bob", ""}, {"Charlie", "25"}}
	if diff := cmp.Diff(want, table.rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTableRender(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Table
		want  string
	}{
		{
			name:  "no headers",
			build: func() *Table { return NewTable(nil) },
			want:  "",
		},
		{
			name: "headers only",
			build: func() *Table {
				return NewTable([]string{"A", "Bee"})
			},
			want: "A  Bee\n" +
				"-  ---\n",
		},
		{
			name: "widest cell sets width",
			build: func() *Table {
				table := NewTable([]string{"Name", "Age"})
				table.AddRow([]string{"Alice", "30"})
				table.AddRow([]string{"Bob", "7"})
				return table
			},
			want: "Name   Age\n" +
				"-----  ---\n" +
				"Alice  30\n" +
				"Bob    7\n",
		},
		{
			name: "right aligned column",
			build: func() *Table {
				table := NewTable([]string{"#", "Count"})
				table.AlignRight(1)
				table.AddRow([]string{"1", "1200"})
				table.AddRow([]string{"2", "35"})
				return table
			},
			want: "#  Count\n" +
				"-  -----\n" +
				"1   1200\n" +
				"2     35\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.build().Render()); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPadding(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight() = %q", got)
	}
	if got := padLeft("ab", 4); got != "  ab" {
		t.Errorf("padLeft() = %q", got)
	}
	if got := padLeft("abcdef", 4); got != "abcdef" {
		t.Errorf("padLeft() should not truncate, got %q", got)
	}
	if strings.Contains(padRight("", 0), " ") {
		t.Error("padRight(\"\", 0) should be empty")
	}
}
