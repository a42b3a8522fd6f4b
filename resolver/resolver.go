package resolver

import "github.com/viant/xmember/member"

//Resolve returns the most derived type, starting from query.Type, declaring a matching member
func Resolve(query *Query) (member.Type, bool) {
	var declaring member.Type
	walk(query.Type, func(aType member.Type) bool {
		if Declares(aType, query) {
			declaring = aType
			return false
		}
		return true
	})
	return declaring, declaring != nil
}

//Declares returns true if aType itself declares a member matching the query
func Declares(aType member.Type, query *Query) bool {
	if aType == nil {
		return false
	}
	for _, candidate := range aType.Members(query.Scope) {
		if candidate.Scope() != query.Scope {
			continue
		}
		if query.matches(candidate) {
			return true
		}
	}
	return false
}

//IsAncestorOrSelf returns true if candidate is derived or one of its ancestors
func IsAncestorOrSelf(derived, candidate member.Type) bool {
	if candidate == nil {
		return false
	}
	found := false
	walk(derived, func(aType member.Type) bool {
		found = aType.Identical(candidate)
		return !found
	})
	return found
}

//walk visits start and its ancestors until fn returns false, a type seen before ends the chain
func walk(start member.Type, fn func(aType member.Type) bool) {
	var visited []member.Type
	for aType := start; aType != nil; aType = aType.Parent() {
		for _, prev := range visited {
			if prev.Identical(aType) {
				return
			}
		}
		if !fn(aType) {
			return
		}
		visited = append(visited, aType)
	}
}
