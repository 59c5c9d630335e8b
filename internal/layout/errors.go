package layout

import "fmt"

// LayoutError represents a layout that cannot be flowed, such as a region too small for one line
type LayoutError struct {
	Message string
	Cause   error
}

func (e *LayoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("layout error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("layout error: %s", e.Message)
}

func (e *LayoutError) Unwrap() error {
	return e.Cause
}
