package metric

import (
	"reflect"
	"time"

	"github.com/viant/gmetric"
	"github.com/viant/gmetric/provider"
)

const (
	Get       = "get"
	Set       = "set"
	GetStatic = "getStatic"
	SetStatic = "setStatic"
)

//Operations represents accessor operation counters
type Operations struct {
	Get       *CounterAdapter
	Set       *CounterAdapter
	GetStatic *CounterAdapter
	SetStatic *CounterAdapter
}

type metricsLocation struct {
}

func metricLocation() string {
	return reflect.TypeOf(metricsLocation{}).PkgPath()
}

//New creates operation counters, nil service creates no-op counters
func New(service *gmetric.Service) *Operations {
	return &Operations{
		Get:       operation(service, Get),
		Set:       operation(service, Set),
		GetStatic: operation(service, GetStatic),
		SetStatic: operation(service, SetStatic),
	}
}

func operation(service *gmetric.Service, name string) *CounterAdapter {
	if service == nil {
		return NewCounter(nil)
	}
	name = "xmember." + name
	if cnt := service.LookupOperation(name); cnt != nil {
		return NewCounter(cnt)
	}
	cnt := service.MultiOperationCounter(metricLocation(), name, name+" performance", time.Millisecond, time.Minute, 2, provider.NewBasic())
	return NewCounter(cnt)
}
