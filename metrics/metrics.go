// Copyright 2024 The Corelib Authors
// This file is part of corelib.
//
// corelib is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// corelib is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with corelib. If not, see <http://www.gnu.org/licenses/>.

// Package metrics wires the internal counters the ambient stack expects
// alongside structured logging: how many undo steps were pushed, how many
// bytes passed through the codec in each direction, and how many diff
// cells the distance engine evaluated. None of this is covered by
// spec.md's testable properties; it is the observability layer every
// long-running consumer of this library (an editor process, a batch
// converter) would want alongside it.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// UndoStepsPushed counts every non-empty undo step pushed onto the undo
	// stack, whether by undo.Manager.Close (ok=true, outside a
	// BeginStep/EndStep bracket) or by undo.Manager.EndStep.
	UndoStepsPushed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "corelib",
		Subsystem: "undo",
		Name:      "steps_pushed_total",
		Help:      "Number of undo steps promoted onto the undo stack.",
	})

	// UndoStepsApplied counts Undo() and Redo() calls that actually
	// popped and replayed a step.
	UndoStepsApplied = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "corelib",
		Subsystem: "undo",
		Name:      "steps_applied_total",
		Help:      "Number of undo steps applied, labeled by direction.",
	}, []string{"direction"})

	// CodecBytesIn/Out track Inflater/Deflater throughput in each
	// direction.
	CodecBytesIn = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "corelib",
		Subsystem: "codec",
		Name:      "bytes_in_total",
		Help:      "Bytes consumed by the flate codec, labeled by direction.",
	}, []string{"direction"})

	CodecBytesOut = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "corelib",
		Subsystem: "codec",
		Name:      "bytes_out_total",
		Help:      "Bytes produced by the flate codec, labeled by direction.",
	}, []string{"direction"})

	// DiffCellsEvaluated tracks the Engine's distance-table work per
	// Solve() call, exposed as a histogram since it varies widely with
	// input size.
	DiffCellsEvaluated = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "corelib",
		Subsystem: "diff",
		Name:      "cells_evaluated",
		Help:      "Number of equality comparisons the diff engine performed per Solve call.",
		Buckets:   prometheus.ExponentialBuckets(8, 4, 8),
	})
)

// Registry is the collector registry these metrics are registered against
// in init, kept separate from the global prometheus.DefaultRegisterer so
// library consumers can mount it at whatever path they choose.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(UndoStepsPushed, UndoStepsApplied, CodecBytesIn, CodecBytesOut, DiffCellsEvaluated)
}
