package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type dumper struct {
	f   *Forth
	out io.Writer

	addrWidth int
}

func (dump dumper) dump() {
	fmt.Fprintf(dump.out, "# Forth Dump\n")
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.f.stack.String())
	if cur := dump.f.current; cur != nil {
		fmt.Fprintf(dump.out, "  defining: %v\n", formatCode(cur.name, cur.actions))
	}
	dump.dumpDict()
}

// dumpDict lists every entry, most recent first, since that is search
// order; entries hidden by a later one of the same name are marked.
func (dump *dumper) dumpDict() {
	dict := &dump.f.dict
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(len(dict.entries))) + 1
	}

	fmt.Fprintf(dump.out, "# Dictionary\n")
	seen := make(map[uint]bool, len(dict.entries))
	var buf strings.Builder
	for i := len(dict.entries) - 1; i >= 0; i-- {
		ent := dict.entries[i]
		name := dict.string(ent.name)

		fmt.Fprintf(&buf, "  @% *v : ", dump.addrWidth, i+1)
		switch {
		case ent.isControl():
			buf.WriteString(name)
			buf.WriteString(" control")
		case ent.code != nil:
			buf.WriteString(formatCode(name, ent.code))
		default:
			buf.WriteString(name)
			buf.WriteString(" native")
		}
		if seen[ent.name] {
			buf.WriteString(" (shadowed)")
		}
		seen[ent.name] = true
		buf.WriteByte('\n')

		io.WriteString(dump.out, buf.String())
		buf.Reset()
	}
}

func formatCode(name string, code []action) string {
	parts := make([]string, 0, len(code)+1)
	parts = append(parts, name)
	for _, act := range code {
		parts = append(parts, act.String())
	}
	return strings.Join(parts, " ")
}
