package native

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/viant/xmember/member"
)

//Declaration represents a member Go structs can not declare natively: a property or a static member
type Declaration struct {
	Owner  reflect.Type
	Name   string
	Type   reflect.Type
	Kind   member.Kind
	Static bool
	get    func(owner unsafe.Pointer) interface{}
	set    func(owner unsafe.Pointer, value interface{})
}

//Scope returns declaration scope
func (d *Declaration) Scope() member.Scope {
	if d.Static {
		return member.Static
	}
	return member.Instance
}

//CanRead returns true if declaration has getter
func (d *Declaration) CanRead() bool {
	return d.get != nil
}

//CanWrite returns true if declaration has setter
func (d *Declaration) CanWrite() bool {
	return d.set != nil
}

func (d *Declaration) validate() error {
	if d.Owner == nil || d.Owner.Kind() != reflect.Struct {
		return errors.Errorf("invalid %v owner: %v, expected struct", d.Name, d.Owner)
	}
	if d.Name == "" {
		return errors.Errorf("%v member name was empty", d.Owner)
	}
	if d.get == nil && d.set == nil {
		return errors.Errorf("%v.%v has neither getter nor setter", d.Owner, d.Name)
	}
	return nil
}

//NewProperty creates an instance property of O with value type V, nil get or set makes it write or read only
func NewProperty[O, V any](name string, get func(owner *O) V, set func(owner *O, value V)) *Declaration {
	result := &Declaration{
		Owner: reflect.TypeOf((*O)(nil)).Elem(),
		Name:  name,
		Type:  reflect.TypeOf((*V)(nil)).Elem(),
		Kind:  member.Property,
	}
	if get != nil {
		result.get = func(owner unsafe.Pointer) interface{} {
			return get((*O)(owner))
		}
	}
	if set != nil {
		result.set = func(owner unsafe.Pointer, value interface{}) {
			set((*O)(owner), valueAs[V](value))
		}
	}
	return result
}

//NewStaticField creates a static field of O backed by a package level variable
func NewStaticField[O, V any](name string, variable *V) *Declaration {
	result := &Declaration{
		Owner:  reflect.TypeOf((*O)(nil)).Elem(),
		Name:   name,
		Type:   reflect.TypeOf((*V)(nil)).Elem(),
		Kind:   member.Field,
		Static: true,
	}
	if variable != nil {
		result.get = func(_ unsafe.Pointer) interface{} {
			return *variable
		}
		result.set = func(_ unsafe.Pointer, value interface{}) {
			*variable = valueAs[V](value)
		}
	}
	return result
}

//NewStaticProperty creates a static property of O, nil get or set makes it write or read only
func NewStaticProperty[O, V any](name string, get func() V, set func(value V)) *Declaration {
	result := &Declaration{
		Owner:  reflect.TypeOf((*O)(nil)).Elem(),
		Name:   name,
		Type:   reflect.TypeOf((*V)(nil)).Elem(),
		Kind:   member.Property,
		Static: true,
	}
	if get != nil {
		result.get = func(_ unsafe.Pointer) interface{} {
			return get()
		}
	}
	if set != nil {
		result.set = func(_ unsafe.Pointer, value interface{}) {
			set(valueAs[V](value))
		}
	}
	return result
}

func valueAs[V any](value interface{}) V {
	var result V
	if value == nil {
		return result
	}
	if actual, ok := value.(V); ok {
		return actual
	}
	reflect.ValueOf(&result).Elem().Set(reflect.ValueOf(value))
	return result
}
