// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string    `yaml:"name"`
	Sizes []float64 `yaml:"sizes"`
}

func TestRoundTrip(t *testing.T) {
	in := sample{Name: "cube", Sizes: []float64{1, 2.5}}
	b, err := WriteBytes(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), "name: cube")

	var out sample
	require.NoError(t, ReadBytes(&out, b))
	assert.Equal(t, in, out)
}

func TestReadEmpty(t *testing.T) {
	out := sample{Name: "kept"}
	require.NoError(t, ReadBytes(&out, nil))
	assert.Equal(t, "kept", out.Name)
}
