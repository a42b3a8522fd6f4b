package native

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"github.com/viant/xmember/member"
	"github.com/viant/xreflect"
)

//Registry represents properties, static members and named owner types
type Registry struct {
	mux          sync.RWMutex
	declarations map[reflect.Type][]*Declaration
	named        map[string]reflect.Type
	types        *xreflect.Types
}

//Default represents process wide registry
var Default = NewRegistry()

//NewRegistry creates a registry
func NewRegistry() *Registry {
	return &Registry{
		declarations: map[reflect.Type][]*Declaration{},
		named:        map[string]reflect.Type{},
		types:        xreflect.NewTypes(),
	}
}

//Register registers declarations, owner types become available by name; a failing batch leaves the registry unchanged
func (r *Registry) Register(declarations ...*Declaration) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	var pending []*Declaration
	for _, declaration := range declarations {
		if err := declaration.validate(); err != nil {
			return err
		}
		if err := r.ensureUnique(declaration, pending); err != nil {
			return err
		}
		if err := r.ensureNamed(declaration.Owner, pending); err != nil {
			return err
		}
		pending = append(pending, declaration)
	}
	for _, declaration := range pending {
		if err := r.registerType(declaration.Owner); err != nil {
			return err
		}
	}
	for _, declaration := range pending {
		r.declarations[declaration.Owner] = append(r.declarations[declaration.Owner], declaration)
	}
	return nil
}

//RegisterType registers struct type under its name
func (r *Registry) RegisterType(rType reflect.Type) error {
	if rType == nil {
		return errors.Errorf("type was nil")
	}
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.registerType(rType)
}

func (r *Registry) registerType(rType reflect.Type) error {
	if err := r.ensureNamed(rType, nil); err != nil {
		return err
	}
	name := rType.Name()
	if name == "" || r.named[name] == rType {
		return nil
	}
	if err := r.types.Register(name, xreflect.WithReflectType(rType)); err != nil {
		return errors.Wrapf(err, "failed to register type %v", rType)
	}
	r.named[name] = rType
	return nil
}

//ensureNamed checks that no other type is registered, or pending, under rType name
func (r *Registry) ensureNamed(rType reflect.Type, pending []*Declaration) error {
	name := rType.Name()
	if name == "" {
		return nil
	}
	if prev, ok := r.named[name]; ok && prev != rType {
		return errors.Errorf("type name %v of %v is already used by %v", name, rType, prev)
	}
	for _, declaration := range pending {
		if declaration.Owner != rType && declaration.Owner.Name() == name {
			return errors.Errorf("type name %v of %v is already used by %v", name, rType, declaration.Owner)
		}
	}
	return nil
}

//Lookup returns a type registered under the name
func (r *Registry) Lookup(name string) (reflect.Type, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.types.Lookup(name)
}

//TypeOf returns type handle bound to this registry
func (r *Registry) TypeOf(rType reflect.Type) *Type {
	return &Type{rType: rType, registry: r}
}

//Declarations returns declarations of the owner type
func (r *Registry) Declarations(owner reflect.Type) []*Declaration {
	r.mux.RLock()
	defer r.mux.RUnlock()
	declarations := r.declarations[owner]
	result := make([]*Declaration, len(declarations))
	copy(result, declarations)
	return result
}

//Declaration returns owner declaration matching name and scope
func (r *Registry) Declaration(owner reflect.Type, name string, scope member.Scope) *Declaration {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.lookup(owner, name, scope)
}

func (r *Registry) lookup(owner reflect.Type, name string, scope member.Scope) *Declaration {
	for _, declaration := range r.declarations[owner] {
		if declaration.Name == name && declaration.Scope() == scope {
			return declaration
		}
	}
	return nil
}

func (r *Registry) ensureUnique(declaration *Declaration, pending []*Declaration) error {
	prev := r.lookup(declaration.Owner, declaration.Name, declaration.Scope())
	for _, candidate := range pending {
		if prev == nil && candidate.Owner == declaration.Owner && candidate.Name == declaration.Name && candidate.Scope() == declaration.Scope() {
			prev = candidate
		}
	}
	if prev != nil {
		return errors.Errorf("%v %v %v.%v was already registered", declaration.Scope(), prev.Kind, declaration.Owner, declaration.Name)
	}
	if declaration.Static {
		return nil
	}
	if _, ok := declaredField(declaration.Owner, declaration.Name); ok {
		return errors.Errorf("%v.%v is already declared as field", declaration.Owner, declaration.Name)
	}
	return nil
}
