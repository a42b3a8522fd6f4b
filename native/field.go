package native

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/viant/xunsafe"
)

//parentField returns the first embedded struct field, the Go counterpart of a base type
func parentField(rType reflect.Type) (reflect.StructField, bool) {
	if rType == nil || rType.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if !field.Anonymous {
			continue
		}
		if structType(field.Type) != nil {
			return field, true
		}
	}
	return reflect.StructField{}, false
}

func structType(rType reflect.Type) reflect.Type {
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType.Kind() != reflect.Struct {
		return nil
	}
	return rType
}

//declaredFields returns fields declared directly on the struct, the parent link excluded
func declaredFields(rType reflect.Type) []reflect.StructField {
	if rType == nil || rType.Kind() != reflect.Struct {
		return nil
	}
	parent, hasParent := parentField(rType)
	var result []reflect.StructField
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if hasParent && field.Index[0] == parent.Index[0] {
			continue
		}
		if field.Name == "_" {
			continue
		}
		result = append(result, field)
	}
	return result
}

func declaredField(rType reflect.Type, name string) (reflect.StructField, bool) {
	for _, field := range declaredFields(rType) {
		if field.Name == name {
			return field, true
		}
	}
	return reflect.StructField{}, false
}

//ancestorPointer moves struct pointer from derived type to the embedded ancestor
func ancestorPointer(ptr unsafe.Pointer, derived, ancestor reflect.Type) (unsafe.Pointer, error) {
	visited := map[reflect.Type]bool{}
	for derived != ancestor {
		field, ok := parentField(derived)
		if !ok || visited[derived] {
			return nil, errors.Wrapf(ErrUndeclared, "%v is not derived from %v", derived, ancestor)
		}
		xField := xunsafe.NewField(field)
		ptr = xField.Pointer(ptr)
		if field.Type.Kind() == reflect.Ptr {
			ptr = *(*unsafe.Pointer)(ptr)
			if ptr == nil {
				return nil, errors.Wrapf(ErrNilAncestor, "%v.%v", derived, field.Name)
			}
		}
		visited[derived] = true
		derived = structType(field.Type)
	}
	return ptr, nil
}
