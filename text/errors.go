package text

// InputError reports a problem with the raw text handed to New: a
// missing or misplaced sentinel, or an empty text.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid text: " + e.Reason
}
