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

import (
	"fmt"

	"github.com/queryplan/joinreorder/sql"
	"github.com/queryplan/joinreorder/sql/colindex"
)

// Project reorders (and/or prunes) its child's columns according to a
// ColumnIndexMapping: output column t is the child's column
// mapping.Inverse().Map(t), i.e. the mapping's domain is the child's
// physical column order and its range is the output order.
type Project struct {
	Child   sql.Node
	Mapping colindex.ColumnIndexMapping
}

// WithMapping builds a Project over child using mapping: mapping.Map(p)
// gives the output position of the child's physical column p.
func WithMapping(child sql.Node, mapping colindex.ColumnIndexMapping) *Project {
	return &Project{Child: child, Mapping: mapping}
}

// Schema implements sql.Node: the child's schema permuted according to
// Mapping.
func (p *Project) Schema() sql.Schema {
	childSchema := p.Child.Schema()
	out := make(sql.Schema, p.Mapping.TargetSize())
	for source, col := range childSchema {
		target, ok := p.Mapping.Map(source)
		if !ok {
			continue
		}
		out[target] = col
	}
	return out
}

// Children implements sql.Node.
func (p *Project) Children() []sql.Node { return []sql.Node{p.Child} }

// Resolved implements sql.Node.
func (p *Project) Resolved() bool { return p.Child.Resolved() }

// String implements fmt.Stringer.
func (p *Project) String() string {
	return fmt.Sprintf("Project(%s, %s)", p.Child, p.Mapping)
}
