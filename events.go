package hltext

// SelectData carries a text selection reported by the host textbox: the
// selected substring and its character-offset endpoints.
type SelectData struct {
	Value string `json:"value"`
	Index [2]int `json:"index"`
}

// The capability interfaces below describe the events a host widget may
// support. Each is independent; a host implements exactly the ones it
// dispatches. This package defines the shapes only and never dispatches.

// Changeable receives value changes, whether user-typed or programmatic.
type Changeable interface {
	OnChange(value string)
}

// Inputable receives user keystrokes as the value is edited.
type Inputable interface {
	OnInput(value string)
}

// Selectable receives text selections within the rendered value.
type Selectable interface {
	OnSelect(data SelectData)
}

// Submittable receives submit actions (typically the enter key).
type Submittable interface {
	OnSubmit(value string)
}

// Focusable receives focus and blur transitions.
type Focusable interface {
	OnFocus()
	OnBlur()
}
