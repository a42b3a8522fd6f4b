package native

import "github.com/pkg/errors"

var (
	//ErrUndeclared is returned when declaring type does not declare a member
	ErrUndeclared = errors.New("member is not declared")
	//ErrNilAncestor is returned when a pointer embedded ancestor is nil
	ErrNilAncestor = errors.New("nil embedded ancestor")
	//ErrNotAddressable is returned when writing through a non pointer instance
	ErrNotAddressable = errors.New("instance is not addressable")
	//ErrNotAssignable is returned when value can not be stored in a member
	ErrNotAssignable = errors.New("value is not assignable")
	//ErrReadOnly is returned when writing a property without setter
	ErrReadOnly = errors.New("property is read only")
	//ErrWriteOnly is returned when reading a property without getter
	ErrWriteOnly = errors.New("property is write only")
	//ErrForeignType is returned when type handle does not come from this host
	ErrForeignType = errors.New("foreign type")
)
