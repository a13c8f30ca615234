package sql

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure a statement can produce.
type ErrorKind int

const (
	KindSyntax ErrorKind = iota + 1
	KindUnsupportedStatement
	KindUnsupportedOperator
	KindTableExists
	KindTableNotFound
	KindColumnNotFound
	KindSchema
	KindType
	KindArity
)

var kindNames = map[ErrorKind]string{
	KindSyntax:               "syntax error",
	KindUnsupportedStatement: "unsupported statement",
	KindUnsupportedOperator:  "unsupported operator",
	KindTableExists:          "table exists",
	KindTableNotFound:        "table not found",
	KindColumnNotFound:       "column not found",
	KindSchema:               "schema error",
	KindType:                 "type error",
	KindArity:                "arity error",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a statement failure of a known kind.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// Is matches any *Error of the same kind, so the Err* sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrSyntax               = &Error{Kind: KindSyntax}
	ErrUnsupportedStatement = &Error{Kind: KindUnsupportedStatement}
	ErrUnsupportedOperator  = &Error{Kind: KindUnsupportedOperator}
	ErrTableExists          = &Error{Kind: KindTableExists}
	ErrTableNotFound        = &Error{Kind: KindTableNotFound}
	ErrColumnNotFound       = &Error{Kind: KindColumnNotFound}
	ErrSchema               = &Error{Kind: KindSchema}
	ErrType                 = &Error{Kind: KindType}
	ErrArity                = &Error{Kind: KindArity}
)

// Errorf builds an *Error of the given kind.
func Errorf(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind carried by err, or 0 if err is not a statement error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
