package page

import "fmt"

// ShapeMismatchError reports a body row whose cell count disagrees with the
// header count. The composer fails fast on the first bad row instead of
// truncating or padding cells into the wrong columns.
type ShapeMismatchError struct {
	Row  int
	Want int
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("page: row %d has %d cells, header declares %d", e.Row, e.Got, e.Want)
}

// MissingCapabilityError reports a sort/filter/paginator value that was
// supplied but does not satisfy its capability interface. Absent (nil)
// capabilities are fine; a present-but-wrong one is a wiring bug and must
// not fall back silently.
type MissingCapabilityError struct {
	Capability string
	Value      any
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("page: %T does not satisfy the %s capability", e.Value, e.Capability)
}
