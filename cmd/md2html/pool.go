package main

import (
	"context"
	"fmt"

	md2html "github.com/alnah/go-md2html"
)

// CLIConverter is the part of md2html.Converter the commands use.
type CLIConverter interface {
	Convert(ctx context.Context, input md2html.Input) (*md2html.ConvertResult, error)
	Tree(ctx context.Context, markdown string) (*md2html.Node, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2html.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
}

// Compile-time check that ConverterPool implements Pool.
var _ Pool = (*ConverterPool)(nil)

// ConverterPool adapts md2html.ConverterPool to Pool. Converters, and the
// browsers behind --pdf, are created lazily on first acquire.
type ConverterPool struct {
	pool *md2html.ConverterPool
}

// NewConverterPool creates a pool with capacity for n converters built
// from opts.
func NewConverterPool(n int, opts ...md2html.Option) *ConverterPool {
	return &ConverterPool{pool: md2html.NewConverterPool(n, opts...)}
}

// Acquire gets a converter, creating one if the pool is below capacity.
// Blocks if all converters are in use.
func (p *ConverterPool) Acquire() (CLIConverter, error) {
	conv, err := p.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release returns a converter to the pool. Passing a converter this pool
// did not hand out is a programmer error and panics.
func (p *ConverterPool) Release(conv CLIConverter) {
	c, ok := conv.(*md2html.Converter)
	if !ok {
		panic(fmt.Sprintf("ConverterPool.Release: unexpected type %T", conv))
	}
	p.pool.Release(c)
}

// Close releases all browser resources.
func (p *ConverterPool) Close() error {
	return p.pool.Close()
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.pool.Size()
}
