// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Elementwise loops split across goroutines for large tensors
//   - Structured logging of every operation
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/dense/backend/cpu"
//	    "github.com/born-ml/dense/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.Create(tensor.NewShape(2, 3))
//	    y, _ := tensor.Create(tensor.NewShape(2, 3))
//	    z, err := backend.Add(x, y)
//	}
//
// # Performance
//
// Small tensors are processed on the calling goroutine. Use NewWithWorkers(1)
// to force sequential execution.
package cpu
