package ast

import (
	"bytes"
	"strings"
)

// docKind tags the shape of a Doc node. This is a generalization of the
// teacher's format.Doc document builder, reduced to the half of that
// engine the dumper actually needs: every node renders on exactly one
// line, so there is no line-fitting/group-breaking logic to carry over.
type docKind uint8

const (
	docEmpty docKind = iota
	docText
	docLine
	docConcat
	docIndent
)

// doc is a small document tree assembled by the Dumper and rendered by
// renderDoc into an indented, line-oriented byte stream.
type doc struct {
	kind  docKind
	text  string
	child *doc
	list  []doc
}

func docEmptyNode() doc { return doc{kind: docEmpty} }

func docText(s string) doc {
	if s == "" {
		return docEmptyNode()
	}
	return doc{kind: docText, text: s}
}

func docLineNode() doc { return doc{kind: docLine} }

func docConcat(parts ...doc) doc {
	filtered := make([]doc, 0, len(parts))
	for _, p := range parts {
		if p.kind == docEmpty {
			continue
		}
		if p.kind == docConcat {
			filtered = append(filtered, p.list...)
			continue
		}
		filtered = append(filtered, p)
	}
	switch len(filtered) {
	case 0:
		return docEmptyNode()
	case 1:
		return filtered[0]
	default:
		return doc{kind: docConcat, list: filtered}
	}
}

func docIndentNode(d doc) doc {
	if d.kind == docEmpty {
		return d
	}
	return doc{kind: docIndent, child: &d}
}

// renderOptions configures renderDoc output.
type renderOptions struct {
	Indent string
}

type renderFrame struct {
	indent int
	doc    doc
}

// renderDoc renders d into bytes using a stack-based walk, exactly the
// indent-stack/line-writer half of the teacher's Render.
func renderDoc(d doc, opts renderOptions) []byte {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	var out bytes.Buffer
	stack := []renderFrame{{indent: 0, doc: d}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch f.doc.kind {
		case docEmpty:
			continue
		case docText:
			out.WriteString(f.doc.text)
		case docLine:
			out.WriteByte('\n')
			out.WriteString(strings.Repeat(opts.Indent, f.indent))
		case docConcat:
			for i := len(f.doc.list) - 1; i >= 0; i-- {
				stack = append(stack, renderFrame{indent: f.indent, doc: f.doc.list[i]})
			}
		case docIndent:
			if f.doc.child != nil {
				stack = append(stack, renderFrame{indent: f.indent + 1, doc: *f.doc.child})
			}
		}
	}

	return out.Bytes()
}
