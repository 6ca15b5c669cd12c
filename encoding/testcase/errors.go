package testcase

import "fmt"

// InvalidBaseError is returned for a base outside [2, 36] or not a number
type InvalidBaseError struct {
	Key  string
	Base string
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %q for key %q: must be an integer in [%d, %d]", e.Base, e.Key, MinBase, MaxBase)
}

// DecodeError is returned when a value contains a digit outside its base alphabet
type DecodeError struct {
	Key   string
	Value string
	Base  int
	Pos   int
}

func (e *DecodeError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("cannot decode empty value for key %q", e.Key)
	}
	return fmt.Sprintf("invalid digit %q at position %d of %q in base %d for key %q",
		e.Value[e.Pos], e.Pos, e.Value, e.Base, e.Key)
}
