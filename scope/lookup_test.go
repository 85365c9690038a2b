// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "cogentcore.org/csg/scope"
)

func TestLookup(t *testing.T) {
	table := [][2]float64{{10, 100}, {-10, -50}, {-5, 0}, {5, 50}, {20, 120}}
	assert.Equal(t, -50.0, Lookup(-9001, table))
	assert.Equal(t, -25.0, Lookup(-7.5, table))
	assert.Equal(t, 0.0, Lookup(-5, table))
	assert.Equal(t, 75.0, Lookup(7.5, table))
	assert.Equal(t, 110.0, Lookup(15, table))
	assert.Equal(t, 120.0, Lookup(30, table))
	assert.Equal(t, 0.0, Lookup(1, nil))

	// the table is not modified
	assert.Equal(t, [2]float64{10, 100}, table[0])
}
