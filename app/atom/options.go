package atom

import (
	"log/slog"
	"time"
)

const (
	Name           = "pub-atom"
	Homepage       = "https://github.com/lysyi3m/pub-atom"
	DefaultVersion = "dev"
)

// DefaultGenerator describes this library. Feeds use it unless the caller
// supplies a generator. Binaries stamp their own build version through
// WithDefaultGenerator.
func DefaultGenerator() GeneratorOptions {
	return GeneratorOptions{
		Name:    Name,
		Version: DefaultVersion,
		URI:     Homepage,
	}
}

type settings struct {
	generator GeneratorOptions
	now       func() time.Time
	logger    *slog.Logger
}

type Option func(*settings)

// WithDefaultGenerator replaces the generator used when FeedOptions has none.
func WithDefaultGenerator(g GeneratorOptions) Option {
	return func(s *settings) {
		s.generator = g
	}
}

// WithClock sets the source of "now" for defaulted updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		generator: DefaultGenerator(),
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
