package rbtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rbtree/arena"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). label formats values; if nil, values are printed
// with %v.
//
// Absent children are drawn as small black boxes, making the sentinel leaves
// and thus black heights visible.
func Tree2Dot[T any](t *Tree[T], w io.Writer, label func(T) string) error {
	if label == nil {
		label = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	var nodelist, edgelist strings.Builder
	nilid := 0
	var walk func(h arena.Handle)
	walk = func(h arena.Handle) {
		n := t.node(h)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", h, escapeDot(label(n.value)), nodeDotStyles(n.color))
		for _, child := range [2]arena.Handle{n.left, n.right} {
			if child == arena.Nil {
				nilid++
				fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", h, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", h, child)
			walk(child)
		}
	}
	if t != nil && t.root != arena.Nil {
		walk(t.root)
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,fillcolor=black,shape=box,fixedsize=true,width=.2,height=.15]"
}

func nodeDotStyles(c Color) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if c == Red {
		s += ",color=\"#cc0000\",fillcolor=\"#ee2222\""
	} else {
		s += ",color=black,fillcolor=black"
	}
	return s
}

func escapeDot(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
