package xmember

import (
	"github.com/viant/gmetric"
	"github.com/viant/xmember/logger"
	"github.com/viant/xmember/member"
	"github.com/viant/xmember/metric"
	"github.com/viant/xmember/native"
)

type Options struct {
	host     member.Host
	registry *native.Registry
	logger   *logger.Adapter
	metrics  *gmetric.Service
	counters *metric.Operations
}

type Option func(o *Options)

func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
	o.init()
}

func (o *Options) init() {
	if o.host == nil {
		o.host = native.New(o.registry)
	}
	if o.logger == nil {
		o.logger = logger.Default()
	}
	o.counters = metric.New(o.metrics)
}

//WithHost creates option to set type system and member introspector
func WithHost(host member.Host) Option {
	return func(o *Options) {
		o.host = host
	}
}

//WithRegistry creates option to use native host with the registry
func WithRegistry(registry *native.Registry) Option {
	return func(o *Options) {
		o.registry = registry
	}
}

func WithLogger(aLogger logger.Logger) Option {
	return func(o *Options) {
		o.logger = logger.NewLogger(aLogger)
	}
}

func WithMetrics(metrics *gmetric.Service) Option {
	return func(o *Options) {
		o.metrics = metrics
	}
}
