package binvec

import "github.com/hupe1980/binvec/codec"

// DefaultProbeFactor bounds a Hamming adjustment to DefaultProbeFactor·n visited positions.
const DefaultProbeFactor = 64

type options struct {
	logger              *Logger
	metricsCollector    MetricsCollector
	adjustSeeder        Seeder
	orthogonalizeSeeder Seeder
	intersectSeeder     Seeder
	combineSeeder       Seeder
	probeFactor         int
}

func defaultOptions() options {
	return options{
		logger:              NoopLogger(),
		metricsCollector:    NoopMetricsCollector{},
		adjustSeeder:        ConstantSeed(DefaultSeed),
		orthogonalizeSeeder: ConstantSeed(DefaultSeed),
		intersectSeeder:     ConstantSeed(DefaultSeed),
		combineSeeder:       DerivedSeed(codec.Raw{}),
		probeFactor:         DefaultProbeFactor,
	}
}

// Option configures an Algebra.
type Option func(*options)

// WithLogger configures structured logging.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &binvec.BasicMetricsCollector{}
//	alg := binvec.New(binvec.WithMetricsCollector(metrics))
//	_ = alg.Orthogonalize(vectors)
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithAdjustSeeding sets the seeding used by AdjustToHalfDistance when the caller
// passes a nil source. Default: ConstantSeed(DefaultSeed).
func WithAdjustSeeding(s Seeder) Option {
	return func(o *options) {
		if s != nil {
			o.adjustSeeder = s
		}
	}
}

// WithOrthogonalizeSeeding sets the seeding used for every pairwise adjustment
// inside Orthogonalize. Default: ConstantSeed(DefaultSeed).
func WithOrthogonalizeSeeding(s Seeder) Option {
	return func(o *options) {
		if s != nil {
			o.orthogonalizeSeeder = s
		}
	}
}

// WithIntersectSeeding sets the seeding used by FuzzyIntersect when the caller
// passes a nil source. Default: ConstantSeed(DefaultSeed).
func WithIntersectSeeding(s Seeder) Option {
	return func(o *options) {
		if s != nil {
			o.intersectSeeder = s
		}
	}
}

// WithCombineSeeding sets the seeding used by WeightedCombine.
// Default: DerivedSeed(codec.Raw{}), keyed on the first operand.
func WithCombineSeeding(s Seeder) Option {
	return func(o *options) {
		if s != nil {
			o.combineSeeder = s
		}
	}
}

// WithProbeFactor bounds each Hamming adjustment to factor·n visited positions.
// Values below 1 select DefaultProbeFactor.
func WithProbeFactor(factor int) Option {
	return func(o *options) {
		if factor < 1 {
			factor = DefaultProbeFactor
		}
		o.probeFactor = factor
	}
}
