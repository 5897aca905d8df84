// Package enginerror defines the typed errors used by the engine. Business
// ambiguity is never an error here: it is expressed through low confidence
// scores. These types cover the few genuinely failing conditions.
package enginerror

import "fmt"

// StoreCorruptionError reports an unreadable or structurally invalid
// classifier store. The classifier recovers from it locally by
// reinitializing an empty store; it is logged, never surfaced to callers
// of Classify.
type StoreCorruptionError struct {
	Path string
	Err  error
}

func (e *StoreCorruptionError) Error() string {
	return fmt.Sprintf("classifier store corrupt at %s: %v", e.Path, e.Err)
}

func (e *StoreCorruptionError) Unwrap() error {
	return e.Err
}

// StoreWriteError reports a failed persist of the classifier store. This is
// the one unrecoverable condition Learn propagates: the caller decides
// whether to retry.
type StoreWriteError struct {
	Path string
	Err  error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("failed to persist classifier store to %s: %v", e.Path, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

// InputError reports input that could not be read at all, such as an
// unreadable line-item file in the CLI. Empty or malformed text never
// produces an InputError inside the engine itself.
type InputError struct {
	Source string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input from %s: %v", e.Source, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
