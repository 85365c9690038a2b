// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"cogentcore.org/csg/base/iox/yamlx"
)

// dumpNode is the YAML form of one element in [Dump].
type dumpNode struct {
	Kind     string         `yaml:"kind,omitempty"`
	Op       string         `yaml:"op,omitempty"`
	Modifier string         `yaml:"modifier,omitempty"`
	Args     []any          `yaml:"args,omitempty"`
	Named    map[string]any `yaml:"named,omitempty"`
	Text     string         `yaml:"text,omitempty"`
	Value    any            `yaml:"value,omitempty"`
	Children []dumpNode     `yaml:"children,omitempty"`
}

func newDumpNode(e Element) dumpNode {
	r := e.Record()
	dn := dumpNode{Op: r.Op, Args: r.Args, Text: r.Text, Value: r.Value}
	if r.Kind != Call {
		dn.Kind = r.Kind.String()
	}
	if r.Modifier != NoModifier {
		dn.Modifier = r.Modifier.String()
	}
	if r.Named.Len() > 0 {
		dn.Named = r.Named.ToMap()
	}
	for _, c := range e.Children() {
		dn.Children = append(dn.Children, newDumpNode(c))
	}
	return dn
}

// Dump returns a YAML description of the given elements and all of
// their descendants, for inspecting a tree before it is rendered.
func Dump(elements []Element) ([]byte, error) {
	nodes := make([]dumpNode, len(elements))
	for i, e := range elements {
		nodes[i] = newDumpNode(e)
	}
	return yamlx.WriteBytes(nodes)
}
