package language

// Type is one of the two semantic types of the language. Expressions are
// Logical; statements are Void.
type Type int

const (
	Logical Type = iota
	Void
)

func (t Type) String() string {
	switch t {
	case Logical:
		return "logical"
	case Void:
		return "void"
	}
	return "unknown"
}
