package language

import "strconv"

// Value is a literal of the modeling language. The language is two-sorted:
// a value is either a boolean or the name of a declared identifier.
type Value interface {
	isValue()
	String() string
}

// Bool is a boolean constant.
type Bool bool

// Identifier names a variable resolved through an Environment.
type Identifier string

func (Bool) isValue()       {}
func (Identifier) isValue() {}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (i Identifier) String() string { return string(i) }

// True and False are the boolean constants.
const (
	True  = Bool(true)
	False = Bool(false)
)
