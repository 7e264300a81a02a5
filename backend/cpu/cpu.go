// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"runtime"

	internalcpu "github.com/born-ml/dense/internal/backend/cpu"
	"github.com/born-ml/dense/internal/logger"
	"github.com/born-ml/dense/internal/parallel"
)

// Backend represents the CPU backend implementation.
//
// The backend runs elementwise loops across goroutines when the tensor is
// large enough and logs every operation through log/slog.
type Backend = internalcpu.CPUBackend

// New creates a CPU backend using one worker per CPU. Log records are discarded.
//
// Example:
//
//	import (
//	    "github.com/born-ml/dense/backend/cpu"
//	    "github.com/born-ml/dense/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    a, _ := tensor.FromSlice([]float32{1, 2}, tensor.NewShape(2))
//	    sum, err := backend.Add(a, a)
//	}
func New() *Backend {
	return internalcpu.New(parallel.DefaultConfig(), nil)
}

// NewWithWorkers creates a CPU backend limited to workers goroutines per
// operation. Zero selects one per CPU; one runs sequentially.
func NewWithWorkers(workers int) *Backend {
	cfg := parallel.DefaultConfig()
	if workers > 0 {
		cfg.NumWorkers = workers
	} else {
		cfg.NumWorkers = runtime.NumCPU()
	}
	cfg.Enabled = cfg.NumWorkers > 1
	return internalcpu.New(cfg, logger.Discard())
}
