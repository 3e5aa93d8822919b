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

package colindex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithShiftOffset(t *testing.T) {
	m := WithShiftOffset(3, 5)
	for i := 0; i < 3; i++ {
		target, ok := m.Map(i)
		require.True(t, ok)
		require.Equal(t, i+5, target)
	}
	_, ok := m.Map(3)
	require.False(t, ok)
	require.Equal(t, 8, m.TargetSize())
}

func TestIdentityIsNoop(t *testing.T) {
	m := Identity(4)
	for i := 0; i < 4; i++ {
		target, ok := m.Map(i)
		require.True(t, ok)
		require.Equal(t, i, target)
	}
}

func TestInverseRoundTrips(t *testing.T) {
	m := WithTargetSize([]int{2, 0, 1}, 3)
	inv := m.Inverse()

	for source := 0; source < 3; source++ {
		target, ok := m.Map(source)
		require.True(t, ok)
		back, ok := inv.Map(target)
		require.True(t, ok)
		require.Equal(t, source, back)
	}
}

func TestWithTargetSizeSkipsUnmapped(t *testing.T) {
	m := WithTargetSize([]int{-1, 0}, 2)
	_, ok := m.Map(0)
	require.False(t, ok)
	target, ok := m.Map(1)
	require.True(t, ok)
	require.Equal(t, 0, target)
}
