package hltext

import (
	"encoding/json"
	"testing"
)

func TestLabel_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		label Label
		want  string
	}{
		{"zero is null", Label{}, `null`},
		{"name is string", Name("ANIMAL"), `"ANIMAL"`},
		{"score is number", Score(0.25), `0.25`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.label)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tc.want {
				t.Errorf("Marshal() = %s, want %s", data, tc.want)
			}
		})
	}
}

func TestLabel_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Label
	}{
		{"null", `null`, Label{}},
		{"string", `"PER"`, Name("PER")},
		{"number", `-1.5`, Score(-1.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Label
			if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tc.raw, err)
			}
			if got != tc.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestLabel_UnmarshalRejectsObject(t *testing.T) {
	var l Label
	if err := json.Unmarshal([]byte(`{"a":1}`), &l); err == nil {
		t.Error("Unmarshal() error = nil, want type error")
	}
}

func TestLabel_String(t *testing.T) {
	if got := Name("LOC").String(); got != "LOC" {
		t.Errorf("String() = %q, want %q", got, "LOC")
	}
	if got := Score(0.5).String(); got != "0.5" {
		t.Errorf("String() = %q, want %q", got, "0.5")
	}
	if got := (Label{}).String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestSegment_JSONTupleShape(t *testing.T) {
	seg := Segment{Text: "cat", Label: Name("ANIMAL")}
	data, err := json.Marshal(seg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `["cat","ANIMAL"]`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back Segment
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != seg {
		t.Errorf("round trip = %v, want %v", back, seg)
	}
}

func TestSegment_UnmarshalRejectsBadTuple(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"one element", `["a"]`},
		{"three elements", `["a",null,1]`},
		{"not an array", `"a"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seg Segment
			if err := json.Unmarshal([]byte(tc.raw), &seg); err == nil {
				t.Errorf("Unmarshal(%s) error = nil, want error", tc.raw)
			}
		})
	}
}
