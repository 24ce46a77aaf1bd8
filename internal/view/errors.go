package view

import "fmt"

// AttributeFormatError reports an attribute value of the wrong shape.
type AttributeFormatError struct {
	Key      string
	Value    any
	Expected string
}

func (e *AttributeFormatError) Error() string {
	return fmt.Sprintf("attribute %q: invalid value %#v: expected %s", e.Key, e.Value, e.Expected)
}
