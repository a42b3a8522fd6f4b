package native

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/viant/xmember/member"
	"github.com/viant/xunsafe"
)

//Host represents Go runtime type system with unexported member access
type Host struct {
	registry *Registry
}

//New creates a host, nil registry uses Default
func New(registry *Registry) *Host {
	if registry == nil {
		registry = Default
	}
	return &Host{registry: registry}
}

//Registry returns host registry
func (h *Host) Registry() *Registry {
	return h.registry
}

//Type returns handle of the reflect type
func (h *Host) Type(rType reflect.Type) member.Type {
	if rType == nil {
		return nil
	}
	return h.registry.TypeOf(rType)
}

//TypeOf returns exact dynamic type of the value
func (h *Host) TypeOf(value interface{}) member.Type {
	return h.Type(reflect.TypeOf(value))
}

//InstanceOf returns struct type of the instance, pointers are dereferenced
func (h *Host) InstanceOf(instance interface{}) member.Type {
	rType := reflect.TypeOf(instance)
	if rType == nil {
		return nil
	}
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	return h.registry.TypeOf(rType)
}

//LookupType returns registered type
func (h *Host) LookupType(name string) (member.Type, error) {
	rType, err := h.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	return h.registry.TypeOf(rType), nil
}

func (h *Host) ReadInstance(instance interface{}, declaring member.Type, name string) (interface{}, error) {
	owner, err := h.reflectType(declaring)
	if err != nil {
		return nil, err
	}
	ptr, err := h.ownerPointer(instance, owner, false)
	if err != nil {
		return nil, err
	}
	if field, ok := declaredField(owner, name); ok {
		return xunsafe.NewField(field).Value(ptr), nil
	}
	declaration, err := h.declaration(owner, name, member.Instance)
	if err != nil {
		return nil, err
	}
	if !declaration.CanRead() {
		return nil, errors.Wrapf(ErrWriteOnly, "%v.%v", owner, name)
	}
	return declaration.get(ptr), nil
}

func (h *Host) WriteInstance(instance interface{}, declaring member.Type, name string, value interface{}) error {
	owner, err := h.reflectType(declaring)
	if err != nil {
		return err
	}
	ptr, err := h.ownerPointer(instance, owner, true)
	if err != nil {
		return err
	}
	if field, ok := declaredField(owner, name); ok {
		source, err := assignable(value, field.Type, owner, name)
		if err != nil {
			return err
		}
		xField := xunsafe.NewField(field)
		reflect.NewAt(field.Type, xField.Pointer(ptr)).Elem().Set(source)
		return nil
	}
	declaration, err := h.declaration(owner, name, member.Instance)
	if err != nil {
		return err
	}
	return h.set(declaration, ptr, value)
}

func (h *Host) ReadStatic(declaring member.Type, name string) (interface{}, error) {
	owner, err := h.reflectType(declaring)
	if err != nil {
		return nil, err
	}
	declaration, err := h.declaration(owner, name, member.Static)
	if err != nil {
		return nil, err
	}
	if !declaration.CanRead() {
		return nil, errors.Wrapf(ErrWriteOnly, "%v.%v", owner, name)
	}
	return declaration.get(nil), nil
}

func (h *Host) WriteStatic(declaring member.Type, name string, value interface{}) error {
	owner, err := h.reflectType(declaring)
	if err != nil {
		return err
	}
	declaration, err := h.declaration(owner, name, member.Static)
	if err != nil {
		return err
	}
	return h.set(declaration, nil, value)
}

func (h *Host) set(declaration *Declaration, ptr unsafe.Pointer, value interface{}) error {
	if !declaration.CanWrite() {
		return errors.Wrapf(ErrReadOnly, "%v.%v", declaration.Owner, declaration.Name)
	}
	if _, err := assignable(value, declaration.Type, declaration.Owner, declaration.Name); err != nil {
		return err
	}
	declaration.set(ptr, value)
	return nil
}

func (h *Host) declaration(owner reflect.Type, name string, scope member.Scope) (*Declaration, error) {
	declaration := h.registry.Declaration(owner, name, scope)
	if declaration == nil {
		return nil, errors.Wrapf(ErrUndeclared, "%v %v.%v", scope, owner, name)
	}
	return declaration, nil
}

func (h *Host) reflectType(aType member.Type) (reflect.Type, error) {
	actual, ok := aType.(*Type)
	if !ok || actual == nil {
		return nil, errors.Wrapf(ErrForeignType, "%T", aType)
	}
	return actual.rType, nil
}

//ownerPointer returns pointer to the owner struct embedded in the instance
func (h *Host) ownerPointer(instance interface{}, owner reflect.Type, writable bool) (unsafe.Pointer, error) {
	value := reflect.ValueOf(instance)
	var ptr unsafe.Pointer
	var rType reflect.Type
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return nil, errors.Errorf("%v instance was nil", value.Type())
		}
		ptr = xunsafe.AsPointer(instance)
		rType = value.Type().Elem()
	case reflect.Struct:
		if writable {
			return nil, errors.Wrapf(ErrNotAddressable, "%v", value.Type())
		}
		clone := reflect.New(value.Type())
		clone.Elem().Set(value)
		ptr = clone.UnsafePointer()
		rType = value.Type()
	default:
		return nil, errors.Errorf("unsupported instance type: %T, expected struct", instance)
	}
	return ancestorPointer(ptr, rType, owner)
}

func assignable(value interface{}, target, owner reflect.Type, name string) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(target), nil
	}
	source := reflect.ValueOf(value)
	if !source.Type().AssignableTo(target) {
		return source, errors.Wrapf(ErrNotAssignable, "%v to %v.%v %v", source.Type(), owner, name, target)
	}
	return source, nil
}
