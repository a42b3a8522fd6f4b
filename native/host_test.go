package native

import (
	"bytes"
	"io"
	"reflect"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/xmember/member"
)

type account struct {
	id      int
	label   string
	Public  string
	reader  io.Reader
	secret  string
	_       int
	counter int
}

type savings struct {
	account
	rate  float64
	label int
}

type linked struct {
	*account
	note string
}

type plain struct {
	io.Reader
	name string
}

type node struct {
	*node
	value int
}

type left struct {
	*right
	name string
}

type right struct {
	*left
	name string
}

var (
	accountSequence = 10
	accountPrefix   = "acc"
)

func newRegistry(t *testing.T) *Registry {
	registry := NewRegistry()
	err := registry.Register(
		NewProperty("Secret", func(a *account) string { return a.secret }, func(a *account, v string) { a.secret = v }),
		NewProperty("Total", func(a *account) int { return a.counter + a.id }, nil),
		NewStaticField[account]("sequence", &accountSequence),
		NewStaticProperty[account]("Prefix", func() string { return accountPrefix }, func(v string) { accountPrefix = v }),
	)
	require.NoError(t, err)
	return registry
}

func TestType_Parent(t *testing.T) {
	registry := NewRegistry()
	var testCases = []struct {
		description string
		rType       reflect.Type
		expect      reflect.Type
	}{
		{description: "value embedding", rType: reflect.TypeOf(savings{}), expect: reflect.TypeOf(account{})},
		{description: "pointer embedding", rType: reflect.TypeOf(linked{}), expect: reflect.TypeOf(account{})},
		{description: "interface embedding is not a parent", rType: reflect.TypeOf(plain{})},
		{description: "root", rType: reflect.TypeOf(account{})},
		{description: "non struct", rType: reflect.TypeOf("")},
	}
	for _, testCase := range testCases {
		parent := registry.TypeOf(testCase.rType).Parent()
		if testCase.expect == nil {
			assert.Nil(t, parent, testCase.description)
			continue
		}
		require.NotNil(t, parent, testCase.description)
		assert.Equal(t, testCase.expect, parent.(*Type).Type(), testCase.description)
	}
}

func TestType_ParentCycle(t *testing.T) {
	registry := NewRegistry()
	assert.Nil(t, registry.TypeOf(reflect.TypeOf(node{})).Parent(), "self embedding")

	parent := registry.TypeOf(reflect.TypeOf(left{})).Parent()
	require.NotNil(t, parent)
	assert.Equal(t, reflect.TypeOf(right{}), parent.(*Type).Type())
	assert.Nil(t, parent.Parent(), "mutual embedding")

	parent = registry.TypeOf(reflect.TypeOf(right{})).Parent()
	require.NotNil(t, parent)
	assert.Equal(t, reflect.TypeOf(left{}), parent.(*Type).Type())
	assert.Nil(t, parent.Parent())

	host := New(registry)
	circular := &left{}
	circular.right = &right{left: circular}
	_, err := host.ReadInstance(circular, host.Type(reflect.TypeOf(account{})), "name")
	assert.True(t, errors.Is(err, ErrUndeclared))

	value, err := host.ReadInstance(&left{right: &right{name: "right"}}, host.Type(reflect.TypeOf(right{})), "name")
	require.NoError(t, err)
	assert.Equal(t, "right", value)
}

func TestType_Members(t *testing.T) {
	registry := newRegistry(t)
	names := func(members []*member.Member) []string {
		var result []string
		for _, candidate := range members {
			result = append(result, candidate.Name)
		}
		return result
	}
	accountType := registry.TypeOf(reflect.TypeOf(account{}))
	assert.Equal(t, []string{"id", "label", "Public", "reader", "secret", "counter", "Secret", "Total"}, names(accountType.Members(member.Instance)))
	assert.Equal(t, []string{"sequence", "Prefix"}, names(accountType.Members(member.Static)))

	savingsType := registry.TypeOf(reflect.TypeOf(savings{}))
	assert.Equal(t, []string{"rate", "label"}, names(savingsType.Members(member.Instance)), "declared only")
	assert.Empty(t, savingsType.Members(member.Static))

	plainType := registry.TypeOf(reflect.TypeOf(plain{}))
	assert.Equal(t, []string{"Reader", "name"}, names(plainType.Members(member.Instance)))
}

func TestType_Relations(t *testing.T) {
	registry := NewRegistry()
	readerType := registry.TypeOf(reflect.TypeOf((*io.Reader)(nil)).Elem())
	bufferType := registry.TypeOf(reflect.TypeOf(&bytes.Buffer{}))
	assert.True(t, bufferType.AssignableTo(readerType))
	assert.False(t, readerType.AssignableTo(bufferType))
	assert.False(t, bufferType.Identical(readerType))
	assert.True(t, bufferType.Identical(registry.TypeOf(reflect.TypeOf(&bytes.Buffer{}))))
	assert.Equal(t, "*bytes.Buffer", bufferType.String())
}

func TestHost_Instance(t *testing.T) {
	host := New(newRegistry(t))
	accountType := host.Type(reflect.TypeOf(account{}))
	savingsType := host.Type(reflect.TypeOf(savings{}))

	instance := &savings{account: account{id: 1, label: "base", secret: "s"}, rate: 0.5, label: 7}

	value, err := host.ReadInstance(instance, accountType, "label")
	require.NoError(t, err)
	assert.Equal(t, "base", value)

	value, err = host.ReadInstance(instance, savingsType, "label")
	require.NoError(t, err)
	assert.Equal(t, 7, value)

	require.NoError(t, host.WriteInstance(instance, accountType, "label", "changed"))
	assert.Equal(t, "changed", instance.account.label)

	require.NoError(t, host.WriteInstance(instance, accountType, "Secret", "hidden"))
	value, err = host.ReadInstance(instance, accountType, "Secret")
	require.NoError(t, err)
	assert.Equal(t, "hidden", value)

	require.NoError(t, host.WriteInstance(instance, accountType, "reader", bytes.NewBufferString("x")))
	assert.NotNil(t, instance.reader)

	value, err = host.ReadInstance(*instance, savingsType, "rate")
	require.NoError(t, err)
	assert.Equal(t, 0.5, value)
}

func TestHost_InstanceErrors(t *testing.T) {
	host := New(newRegistry(t))
	accountType := host.Type(reflect.TypeOf(account{}))

	var testCases = []struct {
		description string
		run         func() error
		expect      error
	}{
		{
			description: "write through value",
			run: func() error {
				return host.WriteInstance(savings{}, accountType, "label", "x")
			},
			expect: ErrNotAddressable,
		},
		{
			description: "nil embedded ancestor",
			run: func() error {
				_, err := host.ReadInstance(&linked{}, accountType, "label")
				return err
			},
			expect: ErrNilAncestor,
		},
		{
			description: "read only property",
			run: func() error {
				return host.WriteInstance(&account{}, accountType, "Total", 1)
			},
			expect: ErrReadOnly,
		},
		{
			description: "not assignable",
			run: func() error {
				return host.WriteInstance(&account{}, accountType, "label", 1)
			},
			expect: ErrNotAssignable,
		},
		{
			description: "undeclared",
			run: func() error {
				_, err := host.ReadInstance(&account{}, accountType, "missing")
				return err
			},
			expect: ErrUndeclared,
		},
		{
			description: "unrelated type",
			run: func() error {
				_, err := host.ReadInstance(&plain{}, accountType, "label")
				return err
			},
			expect: ErrUndeclared,
		},
	}
	for _, testCase := range testCases {
		err := testCase.run()
		assert.True(t, errors.Is(err, testCase.expect), "%v: %v", testCase.description, err)
	}
}

func TestHost_PointerEmbedding(t *testing.T) {
	host := New(newRegistry(t))
	accountType := host.Type(reflect.TypeOf(account{}))
	instance := &linked{account: &account{label: "linked"}}

	value, err := host.ReadInstance(instance, accountType, "label")
	require.NoError(t, err)
	assert.Equal(t, "linked", value)

	require.NoError(t, host.WriteInstance(instance, accountType, "id", 42))
	assert.Equal(t, 42, instance.account.id)
}

func TestHost_Static(t *testing.T) {
	defer func(sequence int, prefix string) {
		accountSequence, accountPrefix = sequence, prefix
	}(accountSequence, accountPrefix)

	host := New(newRegistry(t))
	accountType := host.Type(reflect.TypeOf(account{}))

	value, err := host.ReadStatic(accountType, "sequence")
	require.NoError(t, err)
	assert.Equal(t, 10, value)

	require.NoError(t, host.WriteStatic(accountType, "sequence", 11))
	assert.Equal(t, 11, accountSequence)

	require.NoError(t, host.WriteStatic(accountType, "Prefix", "new"))
	value, err = host.ReadStatic(accountType, "Prefix")
	require.NoError(t, err)
	assert.Equal(t, "new", value)

	_, err = host.ReadStatic(host.Type(reflect.TypeOf(savings{})), "sequence")
	assert.True(t, errors.Is(err, ErrUndeclared))

	err = host.WriteStatic(accountType, "sequence", "x")
	assert.True(t, errors.Is(err, ErrNotAssignable))
}

func TestHost_TypeOf(t *testing.T) {
	host := New(NewRegistry())
	assert.Nil(t, host.TypeOf(nil))
	assert.Nil(t, host.InstanceOf(nil))
	assert.Equal(t, reflect.TypeOf(&account{}), host.TypeOf(&account{}).(*Type).Type())
	assert.Equal(t, reflect.TypeOf(account{}), host.InstanceOf(&account{}).(*Type).Type())
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewStaticField[account]("sequence", &accountSequence)))

	err := registry.Register(NewStaticField[account]("sequence", &accountSequence))
	assert.Error(t, err, "duplicate")

	err = registry.Register(NewProperty("label", func(a *account) string { return a.label }, nil))
	assert.Error(t, err, "clashes with field")

	err = registry.Register(NewStaticField[account, int]("empty", nil))
	assert.Error(t, err, "no accessor")

	err = registry.Register(NewStaticField[int]("sequence", &accountSequence))
	assert.Error(t, err, "non struct owner")

	rType, err := registry.Lookup("account")
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(account{}), rType)

	require.NoError(t, registry.RegisterType(reflect.TypeOf(&plain{})))
	rType, err = registry.Lookup("plain")
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(plain{}), rType)
}

func TestRegistry_RegisterBatch(t *testing.T) {
	registry := NewRegistry()
	accountType := reflect.TypeOf(account{})

	err := registry.Register(
		NewStaticField[account]("sequence", &accountSequence),
		NewStaticField[account, int]("empty", nil),
	)
	assert.Error(t, err)
	assert.Empty(t, registry.Declarations(accountType), "failed batch is not applied")

	err = registry.Register(
		NewStaticField[account]("sequence", &accountSequence),
		NewStaticField[account]("sequence", &accountSequence),
	)
	assert.Error(t, err, "duplicate within batch")
	assert.Empty(t, registry.Declarations(accountType))

	require.NoError(t, registry.Register(NewStaticField[account]("sequence", &accountSequence)))
	assert.Len(t, registry.Declarations(accountType), 1)
}

func TestRegistry_RegisterNameCollision(t *testing.T) {
	outerType := reflect.TypeOf(account{})
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewStaticField[account]("sequence", &accountSequence)))

	type account struct {
		id int
	}
	shadowSequence := 1
	localType := reflect.TypeOf(account{})
	assert.Equal(t, outerType.Name(), localType.Name())

	err := registry.Register(
		NewStaticField[savings]("sequence", &accountSequence),
		NewStaticField[account]("sequence", &shadowSequence),
	)
	assert.Error(t, err, "name already used by another type")
	assert.Empty(t, registry.Declarations(reflect.TypeOf(savings{})), "failed batch is not applied")
	assert.Empty(t, registry.Declarations(localType))

	rType, err := registry.Lookup("account")
	require.NoError(t, err)
	assert.Equal(t, outerType, rType)

	assert.Error(t, registry.RegisterType(localType))
	assert.NoError(t, registry.RegisterType(outerType))

	fresh := NewRegistry()
	err = fresh.Register(
		NewStaticProperty[account]("Local", func() int { return shadowSequence }, nil),
		NewStaticField[savings]("sequence", &accountSequence),
	)
	require.NoError(t, err)
	_, err = fresh.Lookup("savings")
	require.NoError(t, err)
	assert.Error(t, fresh.RegisterType(outerType), "local type owns the name")
}
