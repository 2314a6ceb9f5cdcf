package httpsrv

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gitlab.com/distributed_lab/logan/v3"

	"github.com/tutils/lcgen/counter"
	"github.com/tutils/lcgen/counter/rate"
)

// Options is server options
type Options struct {
	addr       string
	log        *logan.Entry
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
	throughput counter.Counter
	now        func() time.Time
}

// Option is option setter for server
type Option func(*Options)

// default server options
var (
	DefaultListenAddress = "0.0.0.0:8080"
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.log == nil {
		opt.log = logan.New()
	}
	if opt.registerer == nil {
		reg := prometheus.NewRegistry()
		opt.registerer, opt.gatherer = reg, reg
	}
	if opt.throughput == nil {
		opt.throughput = rate.NewRateCounter(time.Second)
	}
	if opt.now == nil {
		opt.now = time.Now
	}

	return opt
}

// WithListenAddress sets server listen address opt
func WithListenAddress(addr string) Option {
	return func(opts *Options) {
		opts.addr = addr
	}
}

// WithLogger sets logger opt
func WithLogger(log *logan.Entry) Option {
	return func(opts *Options) {
		opts.log = log
	}
}

// WithRegistry sets the prometheus registry metrics are registered with and served from
func WithRegistry(reg *prometheus.Registry) Option {
	return func(opts *Options) {
		opts.registerer, opts.gatherer = reg, reg
	}
}

// WithThroughputCounter sets the counter fed with every emitted value
func WithThroughputCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.throughput = c
	}
}

// WithClock sets the clock used to stamp reports
func WithClock(now func() time.Time) Option {
	return func(opts *Options) {
		opts.now = now
	}
}
