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

// Package sql defines the minimal plan-node and expression contracts that
// the join-reordering core depends on. It deliberately stops short of a
// full type system, row representation, or execution model: those are
// external collaborators the core never needs to see.
package sql

import "fmt"

// Type is a placeholder for the column type system. The reordering core
// never inspects a Type's value, only that two columns have one.
type Type interface {
	fmt.Stringer
}

// Column describes a single field of a Schema.
type Column struct {
	Name     string
	Source   string
	Type     Type
	Nullable bool
}

// Schema is the ordered list of fields a Node produces.
type Schema []*Column

// Node is a plan-tree node. The join-reordering core only requires the
// structural surface below; execution (RowIter and friends) belongs to a
// downstream collaborator this module never implements.
type Node interface {
	fmt.Stringer

	// Schema returns this node's output fields, in order.
	Schema() Schema

	// Children returns the node's direct inputs.
	Children() []Node

	// Resolved reports whether every expression and child of this node is
	// fully resolved.
	Resolved() bool
}

// Expression is a scalar expression evaluated against a row of some Node's
// schema.
type Expression interface {
	fmt.Stringer

	// Resolved reports whether this expression and all its children are
	// fully resolved.
	Resolved() bool

	// Children returns the expression's direct subexpressions.
	Children() []Expression

	// WithChildren returns a copy of this expression with its children
	// replaced. len(children) must equal len(Children()).
	WithChildren(children ...Expression) (Expression, error)
}
