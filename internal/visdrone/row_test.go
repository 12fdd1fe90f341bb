package visdrone

import "testing"

func TestParseRow_Valid(t *testing.T) {
	row, err := ParseRow("1,1,10,20,30,40,1,1,0,0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Row{Frame: 1, Target: 1, Left: 10, Top: 20, Width: 30, Height: 40, Score: 1, Category: 1}
	if row != want {
		t.Errorf("ParseRow = %+v, want %+v", row, want)
	}
}

func TestParseRow_TrailingComma(t *testing.T) {
	// VisDrone annotation files commonly terminate rows with a comma.
	row, err := ParseRow("3,7,50,60,10,10,1,4,1,2,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.Frame != 3 || row.Target != 7 || row.Category != 4 || row.Occlusion != 2 {
		t.Errorf("unexpected row: %+v", row)
	}
}

func TestParseRow_Invalid(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "too few fields", line: "1,1,10,20"},
		{name: "too many fields", line: "1,1,10,20,30,40,1,1,0,0,5,6"},
		{name: "non-numeric field", line: "1,abc,10,20,30,40,1,1,0,0"},
		{name: "float field", line: "1,1,10.5,20,30,40,1,1,0,0"},
		{name: "zero frame", line: "0,1,10,20,30,40,1,1,0,0"},
		{name: "negative width", line: "1,1,10,20,-30,40,1,1,0,0"},
		{name: "negative left", line: "1,1,-10,20,30,40,1,1,0,0"},
		{name: "empty", line: ","},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseRow(tc.line); err == nil {
				t.Errorf("ParseRow(%q) succeeded, want error", tc.line)
			}
		})
	}
}
