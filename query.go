package xmember

import "github.com/viant/xmember/member"

type (
	//QueryOption represents member query option
	QueryOption func(q *query)

	query struct {
		searchType    member.Type
		hasSearchType bool
		expected      member.Type
	}
)

func newQuery(options []QueryOption) *query {
	result := &query{}
	for _, option := range options {
		option(result)
	}
	return result
}

//WithSearchType starts member search from the type instead of instance runtime type
func WithSearchType(aType member.Type) QueryOption {
	return func(q *query) {
		q.searchType = aType
		q.hasSearchType = true
	}
}

//WithExpectedType matches only members declared with exactly this value type
func WithExpectedType(aType member.Type) QueryOption {
	return func(q *query) {
		q.expected = aType
	}
}
