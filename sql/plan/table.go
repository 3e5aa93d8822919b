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
)

// ResolvedTable is the only leaf Node this module defines: a named,
// already-resolved relation with a fixed schema. Real table resolution
// (catalog lookups, row storage) is an out-of-scope collaborator; this
// type exists so the reordering core and its tests have something
// concrete to flatten and reorder.
type ResolvedTable struct {
	Name string
	Cols sql.Schema
}

// NewResolvedTable builds a leaf Node named name with the given schema.
func NewResolvedTable(name string, cols sql.Schema) *ResolvedTable {
	return &ResolvedTable{Name: name, Cols: cols}
}

// Schema implements sql.Node.
func (t *ResolvedTable) Schema() sql.Schema { return t.Cols }

// Children implements sql.Node.
func (t *ResolvedTable) Children() []sql.Node { return nil }

// Resolved implements sql.Node.
func (t *ResolvedTable) Resolved() bool { return true }

// String implements fmt.Stringer.
func (t *ResolvedTable) String() string {
	return fmt.Sprintf("Table(%s)", t.Name)
}
