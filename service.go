package xmember

import (
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/viant/xmember/member"
	"github.com/viant/xmember/metric"
	"github.com/viant/xmember/resolver"
)

//Service reads and writes fields and properties of any visibility across the type ancestry
type Service struct {
	options *Options
}

//Get returns instance or static member value, the search starts from obj runtime type unless WithSearchType is used
func (s *Service) Get(obj interface{}, name string, options ...QueryOption) (interface{}, error) {
	onDone := s.options.counters.Get.Begin(time.Now())
	value, err := s.get(obj, name, newQuery(options))
	metric.Done(onDone, err)
	return value, err
}

func (s *Service) get(obj interface{}, name string, options *query) (interface{}, error) {
	if isNil(obj) {
		return nil, nullArgument("obj")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	start, err := s.searchType(obj, options)
	if err != nil {
		return nil, err
	}
	aQuery := &resolver.Query{Type: start, Name: name, Expected: options.expected, Scope: member.Instance, Match: resolver.Exact}
	if declaring, ok := s.resolve(aQuery); ok {
		started := time.Now()
		value, err := s.options.host.ReadInstance(obj, declaring, name)
		s.options.logger.Accessed(metric.Get, declaring, name, started, err)
		return value, wrap(err, "failed to read", declaring, name)
	}
	if declaring, ok := s.resolve(aQuery.WithScope(member.Static)); ok {
		started := time.Now()
		value, err := s.options.host.ReadStatic(declaring, name)
		s.options.logger.Accessed(metric.GetStatic, declaring, name, started, err)
		return value, wrap(err, "failed to read static", declaring, name)
	}
	s.options.logger.NotFound(name, start, options.expected)
	return nil, memberNotFound(start, name, options.expected)
}

//Set assigns instance or static member, only members whose type accepts value type are considered
func (s *Service) Set(obj interface{}, name string, value interface{}, options ...QueryOption) error {
	onDone := s.options.counters.Set.Begin(time.Now())
	err := s.set(obj, name, value, newQuery(options))
	metric.Done(onDone, err)
	return err
}

func (s *Service) set(obj interface{}, name string, value interface{}, options *query) error {
	if isNil(obj) {
		return nullArgument("obj")
	}
	if err := validateName(name); err != nil {
		return err
	}
	if value == nil {
		return nullArgument("value")
	}
	start, err := s.searchType(obj, options)
	if err != nil {
		return err
	}
	valueType := s.options.host.TypeOf(value)
	aQuery := &resolver.Query{Type: start, Name: name, Expected: valueType, Scope: member.Instance, Match: resolver.Assignable}
	if declaring, ok := s.resolve(aQuery); ok {
		started := time.Now()
		err := s.options.host.WriteInstance(obj, declaring, name, value)
		s.options.logger.Accessed(metric.Set, declaring, name, started, err)
		return wrap(err, "failed to write", declaring, name)
	}
	if declaring, ok := s.resolve(aQuery.WithScope(member.Static)); ok {
		started := time.Now()
		err := s.options.host.WriteStatic(declaring, name, value)
		s.options.logger.Accessed(metric.SetStatic, declaring, name, started, err)
		return wrap(err, "failed to write static", declaring, name)
	}
	s.options.logger.NotFound(name, start, valueType)
	return memberNotFound(start, name, valueType)
}

//GetStatic returns static member declared on aType itself, ancestors are not searched
func (s *Service) GetStatic(aType member.Type, name string, options ...QueryOption) (interface{}, error) {
	onDone := s.options.counters.GetStatic.Begin(time.Now())
	value, err := s.getStatic(aType, name, newQuery(options))
	metric.Done(onDone, err)
	return value, err
}

func (s *Service) getStatic(aType member.Type, name string, options *query) (interface{}, error) {
	if aType == nil {
		return nil, nullArgument("type")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	aQuery := &resolver.Query{Type: aType, Name: name, Expected: options.expected, Scope: member.Static, Match: resolver.Exact}
	if !resolver.Declares(aType, aQuery) {
		s.options.logger.NotFound(name, aType, options.expected)
		return nil, memberNotFound(aType, name, options.expected)
	}
	s.options.logger.Resolved(name, member.Static.String(), aType, aType)
	started := time.Now()
	value, err := s.options.host.ReadStatic(aType, name)
	s.options.logger.Accessed(metric.GetStatic, aType, name, started, err)
	return value, wrap(err, "failed to read static", aType, name)
}

//SetStatic assigns static member declared on aType itself, ancestors are not searched
func (s *Service) SetStatic(aType member.Type, name string, value interface{}) error {
	onDone := s.options.counters.SetStatic.Begin(time.Now())
	err := s.setStatic(aType, name, value)
	metric.Done(onDone, err)
	return err
}

func (s *Service) setStatic(aType member.Type, name string, value interface{}) error {
	if aType == nil {
		return nullArgument("type")
	}
	if err := validateName(name); err != nil {
		return err
	}
	if value == nil {
		return nullArgument("value")
	}
	valueType := s.options.host.TypeOf(value)
	aQuery := &resolver.Query{Type: aType, Name: name, Expected: valueType, Scope: member.Static, Match: resolver.Assignable}
	if !resolver.Declares(aType, aQuery) {
		s.options.logger.NotFound(name, aType, valueType)
		return memberNotFound(aType, name, valueType)
	}
	s.options.logger.Resolved(name, member.Static.String(), aType, aType)
	started := time.Now()
	err := s.options.host.WriteStatic(aType, name, value)
	s.options.logger.Accessed(metric.SetStatic, aType, name, started, err)
	return wrap(err, "failed to write static", aType, name)
}

//GetStaticByName returns static member of a type registered under typeName
func (s *Service) GetStaticByName(typeName string, name string, options ...QueryOption) (interface{}, error) {
	aType, err := s.LookupType(typeName)
	if err != nil {
		return nil, err
	}
	return s.GetStatic(aType, name, options...)
}

//SetStaticByName assigns static member of a type registered under typeName
func (s *Service) SetStaticByName(typeName string, name string, value interface{}) error {
	aType, err := s.LookupType(typeName)
	if err != nil {
		return err
	}
	return s.SetStatic(aType, name, value)
}

//LookupType returns type registered under the name
func (s *Service) LookupType(typeName string) (member.Type, error) {
	if strings.TrimSpace(typeName) == "" {
		return nil, newError(ErrInvalidFormat, "typeName", "type name has to be non empty and not white space")
	}
	aType, err := s.options.host.LookupType(typeName)
	if err != nil || aType == nil {
		return nil, &Error{Kind: ErrTypeNotFound, Param: "typeName", Message: typeName + " is not found: " + errorMessage(err)}
	}
	return aType, nil
}

//TypeOf returns exact dynamic type of the value
func (s *Service) TypeOf(value interface{}) member.Type {
	return s.options.host.TypeOf(value)
}

func (s *Service) resolve(aQuery *resolver.Query) (member.Type, bool) {
	declaring, ok := resolver.Resolve(aQuery)
	if ok {
		s.options.logger.Resolved(aQuery.Name, aQuery.Scope.String(), aQuery.Type, declaring)
	}
	return declaring, ok
}

func (s *Service) searchType(obj interface{}, options *query) (member.Type, error) {
	if options.hasSearchType && options.searchType == nil {
		return nil, nullArgument("objType")
	}
	runtimeType := s.options.host.InstanceOf(obj)
	if !options.hasSearchType {
		return runtimeType, nil
	}
	if !resolver.IsAncestorOrSelf(runtimeType, options.searchType) {
		return nil, typeMismatch(options.searchType)
	}
	return options.searchType, nil
}

func wrap(err error, message string, declaring member.Type, name string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "%v %v.%v", message, declaring, name)
}

func errorMessage(err error) string {
	if err == nil {
		return "no type"
	}
	return err.Error()
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rValue.IsNil()
	}
	return false
}

//New creates a service
func New(opts ...Option) *Service {
	options := &Options{}
	options.Apply(opts...)
	return &Service{options: options}
}
