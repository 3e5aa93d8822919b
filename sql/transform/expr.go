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

package transform

import "github.com/queryplan/joinreorder/sql"

// ExprFunc is applied to every expression of a tree during TransformExpr.
type ExprFunc func(sql.Expression) (sql.Expression, TreeIdentity, error)

// TransformExpr applies f to every expression in e's tree, children
// first, rebuilding via WithChildren wherever a child changed.
func TransformExpr(e sql.Expression, f ExprFunc) (sql.Expression, TreeIdentity, error) {
	children := e.Children()
	if len(children) == 0 {
		return f(e)
	}

	newChildren := make([]sql.Expression, len(children))
	same := SameTree
	for i, c := range children {
		newChild, identity, err := TransformExpr(c, f)
		if err != nil {
			return nil, SameTree, err
		}
		newChildren[i] = newChild
		same = same.Coalesce(identity)
	}

	expr := e
	if same == NewTree {
		rebuilt, err := e.WithChildren(newChildren...)
		if err != nil {
			return nil, SameTree, err
		}
		expr = rebuilt
	}

	result, identity, err := f(expr)
	if err != nil {
		return nil, SameTree, err
	}
	return result, same.Coalesce(identity), nil
}
