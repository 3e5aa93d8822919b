// Copyright 2024 The joinreorder Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plan

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrConnectingEdgeNotFound is an internal invariant violation: the
	// reorderer's expansion loop made a full pass over a component's
	// remaining edges without being able to attach any of them to the
	// join built so far. Unreachable for a genuinely connected component;
	// it exists purely as a self-check.
	ErrConnectingEdgeNotFound = errors.NewKind("connecting edge not found in join connected subgraph")

	// ErrNoRelationsFound is an internal invariant violation: the
	// reorderer finished partitioning with zero component joins and zero
	// singletons, meaning the MultiJoin had no inputs at all.
	ErrNoRelationsFound = errors.NewKind("no relations found in the MultiJoin")

	// ErrPlaceholderNodeLowering is returned by every physical-lowering
	// method of MultiJoin (ToBatch, ToStream, LogicalRewriteForStream,
	// PruneCol). MultiJoin is a transient planning placeholder with no
	// physical lowering; reaching one of these methods is a programmer
	// error in the caller, not a recoverable condition.
	ErrPlaceholderNodeLowering = errors.NewKind("method not available for MultiJoin, a placeholder node with a temporary lifetime used only to facilitate join reordering during logical planning")
)
