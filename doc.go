// Package xmember reads and writes struct fields and properties of any visibility.
//
// The member is looked up on the instance runtime type first, then on its
// ancestors (the first embedded struct of each level), the most derived
// declaration wins. Static members and properties are declared in a
// native.Registry since Go structs can not express them.
//
//	registry := native.NewRegistry()
//	_ = registry.Register(native.NewStaticField[Base]("counter", &baseCounter))
//	service := xmember.New(xmember.WithRegistry(registry))
//	value, err := service.Get(&Derived{}, "private")
//	text, err := xmember.GetAs[string](service, &Derived{}, "private")
package xmember
