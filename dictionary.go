package main

import "strings"

// Word is a runnable dictionary entry: either a native primitive, or a
// compiled definition replaying its actions. Any text it returns is appended
// to the output of the line (or word) that ran it.
type Word func(st *Stack, dict *Dictionary) (string, error)

// control tags the markers that structure conditionals inside definitions;
// they are never run directly.
type control uint8

const (
	ctlNone control = iota
	ctlIf
	ctlElse
	ctlThen
)

var controlNames = [...]string{"", "if", "else", "then"}

func (ctl control) String() string { return controlNames[ctl] }

// definition is what a dictionary name resolves to: a control marker, or a
// runnable word; compiled words also retain their actions for dumping.
type definition struct {
	ctl  control
	word Word
	code []action
}

func (def definition) isControl() bool { return def.ctl != ctlNone }

type entry struct {
	name uint
	definition
}

// Dictionary maps case-insensitive names to definitions. It is append only:
// adding a name again shadows any prior entry, which stays in place so that
// compiled words that resolved it keep working unchanged.
type Dictionary struct {
	symbols
	entries []entry
}

// The symbol table stores every name ever defined, lower-cased; a name's
// symbol is its 1-based index, 0 means undefined.
type symbols struct {
	strings []string
	symbols map[string]uint
}

func (sym symbols) string(id uint) string {
	if i := int(id) - 1; i >= 0 && i < len(sym.strings) {
		return sym.strings[i]
	}
	return ""
}

func (sym symbols) symbol(s string) uint {
	return sym.symbols[strings.ToLower(s)]
}

func (sym *symbols) symbolicate(s string) (id uint) {
	s = strings.ToLower(s)
	id, defined := sym.symbols[s]
	if !defined {
		if sym.symbols == nil {
			sym.symbols = make(map[string]uint)
		}
		id = uint(len(sym.strings)) + 1
		sym.strings = append(sym.strings, s)
		sym.symbols[s] = id
	}
	return id
}

// Add puts a runnable word at the front of the search order.
func (dict *Dictionary) Add(name string, word Word) {
	dict.add(name, definition{word: word})
}

func (dict *Dictionary) addControl(name string, ctl control) {
	dict.add(name, definition{ctl: ctl})
}

func (dict *Dictionary) add(name string, def definition) {
	dict.entries = append(dict.entries, entry{dict.symbolicate(name), def})
}

// lookup searches most recent first; ok is false if name was never defined.
func (dict *Dictionary) lookup(name string) (def definition, ok bool) {
	if sym := dict.symbol(name); sym != 0 {
		for i := len(dict.entries) - 1; i >= 0; i-- {
			if dict.entries[i].name == sym {
				return dict.entries[i].definition, true
			}
		}
	}
	return definition{}, false
}

// Lookup returns the runnable word currently bound to name, or nil if the
// name is undefined or names a control marker.
func (dict *Dictionary) Lookup(name string) Word {
	if def, ok := dict.lookup(name); ok {
		return def.word
	}
	return nil
}
