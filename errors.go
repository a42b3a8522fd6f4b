package xmember

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/xmember/member"
)

var (
	//ErrNullArgument is returned when a required argument is nil
	ErrNullArgument = errors.New("null argument")
	//ErrInvalidFormat is returned when member name is blank
	ErrInvalidFormat = errors.New("invalid format")
	//ErrTypeMismatch is returned when search type is not the instance type or its ancestor
	ErrTypeMismatch = errors.New("type mismatch")
	//ErrMemberNotFound is returned when no type declares a matching member
	ErrMemberNotFound = errors.New("member not found")
	//ErrTypeNotFound is returned when a type name is not registered
	ErrTypeNotFound = errors.New("type not found")
	//ErrInvalidCast is returned when a value can not be converted to the requested type
	ErrInvalidCast = errors.New("invalid cast")
)

//Error represents accessor error
type Error struct {
	Kind    error
	Param   string
	Message string
}

func (e *Error) Error() string {
	if e.Param == "" {
		return e.Message
	}
	return fmt.Sprintf("%v (parameter '%v')", e.Message, e.Param)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, param string, format string, args ...interface{}) error {
	return &Error{Kind: kind, Param: param, Message: fmt.Sprintf(format, args...)}
}

func nullArgument(param string) error {
	return newError(ErrNullArgument, param, "%v was nil", param)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return newError(ErrInvalidFormat, "name", "name has to be non empty and not white space")
	}
	return nil
}

func typeMismatch(searchType member.Type) error {
	return newError(ErrTypeMismatch, "objType", "%v is invalid type for this object", searchType)
}

func memberNotFound(aType member.Type, name string, expected member.Type) error {
	if expected != nil {
		name = expected.String() + " " + name
	}
	return newError(ErrMemberNotFound, "name", "%v is not found in %v", name, aType)
}
