package xmember

import (
	"reflect"

	"github.com/viant/xmember/member"
)

type reflectHost interface {
	Type(rType reflect.Type) member.Type
}

//TypeFor returns handle of T, nil when the service host is not reflect based
func TypeFor[T any](s *Service) member.Type {
	host, ok := s.options.host.(reflectHost)
	if !ok {
		return nil
	}
	return host.Type(reflect.TypeOf((*T)(nil)).Elem())
}

//GetAs returns member value declared exactly as T
func GetAs[T any](s *Service, obj interface{}, name string, options ...QueryOption) (T, error) {
	value, err := s.Get(obj, name, withExpected[T](s, options)...)
	if err != nil {
		var result T
		return result, err
	}
	return cast[T](value, name)
}

//GetStaticAs returns static member of aType declared exactly as T
func GetStaticAs[T any](s *Service, aType member.Type, name string, options ...QueryOption) (T, error) {
	value, err := s.GetStatic(aType, name, withExpected[T](s, options)...)
	if err != nil {
		var result T
		return result, err
	}
	return cast[T](value, name)
}

func withExpected[T any](s *Service, options []QueryOption) []QueryOption {
	expected := TypeFor[T](s)
	if expected == nil {
		return options
	}
	result := make([]QueryOption, 0, len(options)+1)
	result = append(result, options...)
	return append(result, WithExpectedType(expected))
}

func cast[T any](value interface{}, name string) (T, error) {
	var result T
	if value == nil {
		return result, nil
	}
	actual, ok := value.(T)
	if !ok {
		return result, newError(ErrInvalidCast, name, "unable to cast %T to %v", value, reflect.TypeOf((*T)(nil)).Elem())
	}
	return actual, nil
}
