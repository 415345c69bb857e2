package perfdar

import "github.com/Brandhoej/perfdar/language"

// Update is the optional effect applied to the environment when an edge
// fires. An empty update is the identity on the environment.
type Update struct {
	Statement *language.Assignment
}

// NewUpdate wraps an assignment as an update.
func NewUpdate(statement *language.Assignment) Update {
	return Update{Statement: statement}
}

// NoUpdate is the identity update.
func NoUpdate() Update { return Update{} }

// IsEmpty reports whether the update is the identity.
func (u Update) IsEmpty() bool { return u.Statement == nil }

// Identifiers returns the identifiers referenced by the update, if any.
func (u Update) Identifiers() []string {
	if u.Statement == nil {
		return nil
	}
	return u.Statement.Identifiers()
}

func (u Update) String() string {
	if u.Statement == nil {
		return "void"
	}
	return u.Statement.String()
}
