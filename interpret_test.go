package hltext

import (
	"reflect"
	"testing"
)

func strptr(s string) *string { return &s }

func TestTokenize_LeaveOneOut(t *testing.T) {
	in := NewInterpreter(" ", nil)
	tokens, variants := in.Tokenize("a b c")

	wantTokens := []string{"a", "b", "c"}
	if !reflect.DeepEqual(tokens, wantTokens) {
		t.Errorf("tokens = %v, want %v", tokens, wantTokens)
	}
	wantVariants := []string{"b c", "a c", "a b"}
	if !reflect.DeepEqual(variants, wantVariants) {
		t.Errorf("variants = %v, want %v", variants, wantVariants)
	}
}

func TestTokenize_Replacement(t *testing.T) {
	in := NewInterpreter(" ", strptr("X"))
	_, variants := in.Tokenize("a b c")

	want := []string{"X b c", "a X c", "a b X"}
	if !reflect.DeepEqual(variants, want) {
		t.Errorf("variants = %v, want %v", variants, want)
	}
}

// Plain split semantics: consecutive separators produce empty tokens, and
// variants keep them.
func TestTokenize_ConsecutiveSeparators(t *testing.T) {
	in := NewInterpreter(" ", nil)
	tokens, variants := in.Tokenize("a  b")

	wantTokens := []string{"a", "", "b"}
	if !reflect.DeepEqual(tokens, wantTokens) {
		t.Errorf("tokens = %v, want %v", tokens, wantTokens)
	}
	wantVariants := []string{" b", "a b", "a "}
	if !reflect.DeepEqual(variants, wantVariants) {
		t.Errorf("variants = %v, want %v", variants, wantVariants)
	}
}

func TestTokenize_CustomSeparator(t *testing.T) {
	in := NewInterpreter(",", nil)
	tokens, variants := in.Tokenize("x,y")

	wantTokens := []string{"x", "y"}
	if !reflect.DeepEqual(tokens, wantTokens) {
		t.Errorf("tokens = %v, want %v", tokens, wantTokens)
	}
	wantVariants := []string{"y", "x"}
	if !reflect.DeepEqual(variants, wantVariants) {
		t.Errorf("variants = %v, want %v", variants, wantVariants)
	}
}

func TestTokenize_EmptyText(t *testing.T) {
	in := NewInterpreter(" ", nil)
	tokens, variants := in.Tokenize("")

	// Splitting "" yields one empty token; its variant removes it.
	wantTokens := []string{""}
	if !reflect.DeepEqual(tokens, wantTokens) {
		t.Errorf("tokens = %v, want %v", tokens, wantTokens)
	}
	wantVariants := []string{""}
	if !reflect.DeepEqual(variants, wantVariants) {
		t.Errorf("variants = %v, want %v", variants, wantVariants)
	}
}

func TestMaskedInputs(t *testing.T) {
	in := NewInterpreter(" ", nil)
	tokens := []string{"a", "b", "c"}

	tests := []struct {
		name  string
		masks [][]int
		want  []string
	}{
		{
			name:  "single bits",
			masks: [][]int{{1, 0, 1}, {0, 1, 0}},
			want:  []string{"a c", "b"},
		},
		{
			name:  "all and none",
			masks: [][]int{{1, 1, 1}, {0, 0, 0}},
			want:  []string{"a b c", ""},
		},
		{
			name:  "mask longer than tokens ignores extra bits",
			masks: [][]int{{1, 0, 1, 1, 1}},
			want:  []string{"a c"},
		},
		{
			name:  "mask shorter than tokens covers prefix",
			masks: [][]int{{1}},
			want:  []string{"a"},
		},
		{
			name:  "no masks",
			masks: nil,
			want:  []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := in.MaskedInputs(tokens, tc.masks)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("MaskedInputs() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInterpretationScores(t *testing.T) {
	in := NewInterpreter(" ", nil)
	got := in.InterpretationScores([]string{"a", "b"}, []float64{0.1, 0.2})

	want := []Segment{
		{Text: "a", Label: Score(0.1)},
		{Text: " ", Label: Score(0)},
		{Text: "b", Label: Score(0.2)},
		{Text: " ", Label: Score(0)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InterpretationScores() = %v, want %v", got, want)
	}
}

// A length mismatch aligns the shared prefix and ignores the rest.
func TestInterpretationScores_Truncates(t *testing.T) {
	in := NewInterpreter(" ", nil)

	got := in.InterpretationScores([]string{"a", "b", "c"}, []float64{0.5})
	want := []Segment{
		{Text: "a", Label: Score(0.5)},
		{Text: " ", Label: Score(0)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InterpretationScores() = %v, want %v", got, want)
	}

	if got := in.InterpretationScores(nil, []float64{1, 2}); len(got) != 0 {
		t.Errorf("InterpretationScores(nil, scores) = %v, want empty", got)
	}
}

func TestNewInterpreter_DefaultSeparator(t *testing.T) {
	in := NewInterpreter("", nil)
	if in.Separator != " " {
		t.Errorf("Separator = %q, want %q", in.Separator, " ")
	}
}
