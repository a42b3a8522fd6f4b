package member

type (
	//Kind represents member kind
	Kind int

	//Scope represents member scope
	Scope int

	//Member represents a field or property declared directly on a type
	Member struct {
		Name   string
		Type   Type
		Kind   Kind
		Static bool
	}
)

const (
	Field Kind = iota
	Property
)

const (
	Instance Scope = iota
	Static
)

func (k Kind) String() string {
	if k == Property {
		return "property"
	}
	return "field"
}

func (s Scope) String() string {
	if s == Static {
		return "static"
	}
	return "instance"
}

//Scope returns member scope
func (m *Member) Scope() Scope {
	if m.Static {
		return Static
	}
	return Instance
}
