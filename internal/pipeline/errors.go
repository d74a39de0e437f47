package pipeline

import "fmt"

// StepError wraps a generation failure with the pipeline step it occurred in.
// Generation failures abort the remaining sequence: no retry, no skip, no
// partial-success continuation. The error propagates unchanged to the CLI,
// which terminates with a non-zero exit code.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
