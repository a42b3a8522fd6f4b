package native

import (
	"reflect"

	"github.com/viant/xmember/member"
)

//Type represents reflect.Type handle, struct embedding forms its ancestry
type Type struct {
	rType    reflect.Type
	registry *Registry
	derived  []reflect.Type
}

//Type returns underlying reflect type
func (t *Type) Type() reflect.Type {
	return t.rType
}

func (t *Type) String() string {
	return t.rType.String()
}

//Parent returns the first embedded struct type, nil when the embedding refers back to the chain
func (t *Type) Parent() member.Type {
	field, ok := parentField(t.rType)
	if !ok {
		return nil
	}
	parent := structType(field.Type)
	if parent == t.rType {
		return nil
	}
	for _, candidate := range t.derived {
		if candidate == parent {
			return nil
		}
	}
	derived := make([]reflect.Type, 0, len(t.derived)+1)
	derived = append(derived, t.derived...)
	return &Type{rType: parent, registry: t.registry, derived: append(derived, t.rType)}
}

//Members returns struct fields and registered declarations of this exact type
func (t *Type) Members(scope member.Scope) []*member.Member {
	var result []*member.Member
	if scope == member.Instance {
		for _, field := range declaredFields(t.rType) {
			result = append(result, &member.Member{
				Name: field.Name,
				Type: t.registry.TypeOf(field.Type),
				Kind: member.Field,
			})
		}
	}
	for _, declaration := range t.registry.Declarations(t.rType) {
		if declaration.Scope() != scope {
			continue
		}
		result = append(result, &member.Member{
			Name:   declaration.Name,
			Type:   t.registry.TypeOf(declaration.Type),
			Kind:   declaration.Kind,
			Static: declaration.Static,
		})
	}
	return result
}

func (t *Type) Identical(other member.Type) bool {
	actual, ok := other.(*Type)
	return ok && actual != nil && actual.rType == t.rType
}

func (t *Type) AssignableTo(other member.Type) bool {
	actual, ok := other.(*Type)
	return ok && actual != nil && t.rType.AssignableTo(actual.rType)
}
