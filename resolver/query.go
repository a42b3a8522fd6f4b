package resolver

import "github.com/viant/xmember/member"

//Match reports whether a declared member value type satisfies the expected one
type Match func(declared, expected member.Type) bool

//Query represents member resolution query
type Query struct {
	Type     member.Type
	Name     string
	Expected member.Type
	Scope    member.Scope
	Match    Match
}

//Exact matches identical types only, used on read path
func Exact(declared, expected member.Type) bool {
	return declared.Identical(expected)
}

//Assignable matches declared types a value of expected type can be stored into, used on write path
func Assignable(declared, expected member.Type) bool {
	return expected.AssignableTo(declared)
}

//WithScope returns query copy with the scope
func (q Query) WithScope(scope member.Scope) *Query {
	q.Scope = scope
	return &q
}

func (q *Query) matches(candidate *member.Member) bool {
	if candidate.Name != q.Name {
		return false
	}
	if q.Expected == nil {
		return true
	}
	match := q.Match
	if match == nil {
		match = Exact
	}
	return match(candidate.Type, q.Expected)
}
