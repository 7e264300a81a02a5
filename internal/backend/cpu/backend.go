// Package cpu implements the CPU backend: tensor operations run with a fixed
// parallel configuration and are logged.
package cpu

import (
	"context"
	"time"

	"github.com/born-ml/dense/internal/logger"
	"github.com/born-ml/dense/internal/parallel"
	"github.com/born-ml/dense/internal/tensor"
)

// CPUBackend executes tensor operations on the CPU.
type CPUBackend struct {
	par parallel.Config
	log *logger.Logger
}

// New creates a CPU backend. A nil logger discards all records.
func New(par parallel.Config, log *logger.Logger) *CPUBackend {
	if log == nil {
		log = logger.Discard()
	}
	return &CPUBackend{
		par: par,
		log: log,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Parallel returns the parallel configuration used for elementwise loops.
func (cpu *CPUBackend) Parallel() parallel.Config {
	return cpu.par
}

// Add returns a + b. Both tensors must have the same shape.
func (cpu *CPUBackend) Add(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return cpu.run("add", a, func() (*tensor.Tensor, error) {
		return tensor.AddWith(cpu.par, a, b)
	})
}

// Sub returns a - b. Both tensors must have the same shape.
func (cpu *CPUBackend) Sub(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return cpu.run("sub", a, func() (*tensor.Tensor, error) {
		return tensor.SubWith(cpu.par, a, b)
	})
}

// Broadcast expands size-1 dimension dim of t to n.
func (cpu *CPUBackend) Broadcast(ctx context.Context, t *tensor.Tensor, dim, n int) (*tensor.Tensor, error) {
	return cpu.run("broadcast", t, func() (*tensor.Tensor, error) {
		return tensor.BroadcastWith(ctx, cpu.par, t, dim, n)
	})
}

func (cpu *CPUBackend) run(op string, in *tensor.Tensor, f func() (*tensor.Tensor, error)) (*tensor.Tensor, error) {
	log := cpu.log.WithOp(op)
	if label, ok := in.Label(); ok {
		log = log.WithTensor(label)
	}

	start := time.Now()
	out, err := f()
	if err != nil {
		log.WithError(err).Warn("tensor operation failed", "shape", in.ShapeString())
		return nil, err
	}

	log.Debug("tensor operation",
		"shape", out.ShapeString(),
		"entries", out.NumElements(),
		"duration", time.Since(start),
	)
	return out, nil
}
