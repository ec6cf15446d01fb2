package hltext

import "strings"

// Interpreter generates the token-level variants used for leave-one-out and
// mask-based sensitivity analysis. It only produces inputs and reassembles
// scores; running the scored function is the host's job.
type Interpreter struct {
	// Separator splits text into tokens and rejoins variants.
	Separator string
	// Replacement substitutes for the dropped token in each variant. When
	// nil the token is removed outright, which shortens the variant by one
	// token instead of keeping the count stable.
	Replacement *string
}

// NewInterpreter returns an interpreter for the given separator and
// replacement. An empty separator falls back to a single space.
func NewInterpreter(separator string, replacement *string) *Interpreter {
	if separator == "" {
		separator = " "
	}
	return &Interpreter{Separator: separator, Replacement: replacement}
}

// Tokenize splits text on the separator with plain split semantics
// (consecutive separators yield empty tokens) and builds one masked variant
// per token: the token sequence with that index removed or replaced,
// rejoined with the separator. variants is parallel to tokens.
func (in *Interpreter) Tokenize(text string) (tokens, variants []string) {
	tokens = strings.Split(text, in.Separator)
	variants = make([]string, len(tokens))
	for i := range tokens {
		variant := make([]string, 0, len(tokens))
		variant = append(variant, tokens[:i]...)
		if in.Replacement != nil {
			variant = append(variant, *in.Replacement)
		}
		variant = append(variant, tokens[i+1:]...)
		variants[i] = strings.Join(variant, in.Separator)
	}
	return tokens, variants
}

// MaskedInputs builds one partially-masked input per bit vector: the
// separator-joined tokens whose bit is set, in original token order. Used
// for combinatorial masking such as Shapley-value sampling. Bits beyond the
// token count are ignored.
func (in *Interpreter) MaskedInputs(tokens []string, masks [][]int) []string {
	out := make([]string, 0, len(masks))
	for _, mask := range masks {
		kept := make([]string, 0, len(tokens))
		for i, bit := range mask {
			if i >= len(tokens) {
				break
			}
			if bit != 0 {
				kept = append(kept, tokens[i])
			}
		}
		out = append(out, strings.Join(kept, in.Separator))
	}
	return out
}

// InterpretationScores interleaves per-token scores into a display segment
// sequence: (token, score) followed by (separator, 0) for every token,
// trailing separator included. When the slices differ in length the extra
// entries of the longer one are ignored; the host feeds scores back
// positionally and alignment holds only for the shared prefix.
func (in *Interpreter) InterpretationScores(tokens []string, scores []float64) []Segment {
	n := min(len(tokens), len(scores))
	out := make([]Segment, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, Segment{Text: tokens[i], Label: Score(scores[i])})
		out = append(out, Segment{Text: in.Separator, Label: Score(0)})
	}
	return out
}
