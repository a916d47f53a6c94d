// Copyright 2026 The Hearth Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for Hearth host tensors.
//
// # Overview
//
// Hearth represents host-memory tensors in three forms:
//   - COO: sparse coordinate-list tensor (indices + values)
//   - RawTensor: fully materialized dense row-major tensor
//   - Scalar[T]: degenerate tensor holding at most one logical value
//
// The central operation is converting a COO tensor into a dense or scalar
// host tensor:
//
//	h := host.New()
//	coo, err := tensor.NewCOOFromSlices(h, tensor.Shape{2, 2},
//	    [][]int{{0, 1}, {1, 0}}, []int32{5, 7})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := coo.ConvertToHostTensor(h, tensor.FormatDense|tensor.FormatScalar)
//	ht, err := result.Await(ctx)
//
// Conversion runs synchronously on the calling goroutine and publishes its
// outcome through a single-assignment host.AsyncValue, so tensors produced
// on one goroutine are safely observable from any other.
//
// # Supported Data Types
//
// The DType constraint enumerates the closed numeric registry:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers)
package tensor
