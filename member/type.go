package member

import "fmt"

//Type represents a type handle of the host type system
type Type interface {
	fmt.Stringer
	//Parent returns the type this type derives from, nil for a root type
	Parent() Type
	//Members returns members declared directly on this type (never inherited) for the given scope
	Members(scope Scope) []*Member
	//Identical returns true if both handles denote the same type
	Identical(other Type) bool
	//AssignableTo returns true if a value of this type can be stored where other is declared
	AssignableTo(other Type) bool
}

//TypeSystem represents host type introspection
type TypeSystem interface {
	//TypeOf returns exact dynamic type of a value
	TypeOf(value interface{}) Type
	//InstanceOf returns the type instance members are looked up on
	InstanceOf(instance interface{}) Type
	//LookupType returns a type registered under the name
	LookupType(name string) (Type, error)
}

//Introspector reads and writes members regardless of their visibility
type Introspector interface {
	ReadInstance(instance interface{}, declaring Type, name string) (interface{}, error)
	WriteInstance(instance interface{}, declaring Type, name string, value interface{}) error
	ReadStatic(declaring Type, name string) (interface{}, error)
	WriteStatic(declaring Type, name string, value interface{}) error
}

//Host represents a type system with privileged member access
type Host interface {
	TypeSystem
	Introspector
}
