package task

import (
	"github.com/dreamerjackson/htstask/source"
	"go.uber.org/zap"
)

type options struct {
	logger   *zap.Logger
	basePath string
	sources  []source.Source
	first    int // 起始章节
	last     int // 结束章节，包含
}

var defaultOptions = options{
	logger:   zap.NewNop(),
	basePath: "HTS",
	first:    6,
	last:     97,
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithBasePath(basePath string) Option {
	return func(opts *options) {
		opts.basePath = basePath
	}
}

func WithSources(sources ...source.Source) Option {
	return func(opts *options) {
		opts.sources = sources
	}
}

func WithChapters(first, last int) Option {
	return func(opts *options) {
		opts.first = first
		opts.last = last
	}
}
