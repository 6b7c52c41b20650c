package main

import (
	"strconv"
	"strings"
)

// Compiled definitions are a flat list of actions; conditionals stay as
// markers in that list and are resolved each time the word runs.
type opCode uint8

const (
	opCall    opCode = iota // run a word resolved at compile time
	opLiteral               // push a number
	opText                  // output a ." string
	opIf
	opElse
	opThen
)

type action struct {
	op   opCode
	name string
	word Word
	n    int
	text string
}

func (act action) String() string {
	switch act.op {
	case opCall:
		return act.name
	case opLiteral:
		return strconv.Itoa(act.n)
	case opText:
		return `." ` + act.text + `"`
	case opIf:
		return "if"
	case opElse:
		return "else"
	case opThen:
		return "then"
	}
	return "<invalid>"
}

func (act action) run(st *Stack, dict *Dictionary) (string, error) {
	switch act.op {
	case opCall:
		return act.word(st, dict)
	case opLiteral:
		st.Push(act.n)
		return "", nil
	case opText:
		return act.text, nil
	}
	return "", nil
}

func controlAction(ctl control) action {
	switch ctl {
	case ctlIf:
		return action{op: opIf}
	case ctlElse:
		return action{op: opElse}
	default:
		return action{op: opThen}
	}
}

// parseNumber accepts text that survives a round trip through an integer
// unchanged, so "007", "+5" and "-0" are not numbers.
func parseNumber(text string) (int, bool) {
	n, err := strconv.Atoi(text)
	if err != nil || strconv.Itoa(n) != text {
		return 0, false
	}
	return n, true
}

// compiler accumulates the body of one ": name ... ;" definition.
type compiler struct {
	log     *logging
	name    string
	dict    *Dictionary
	actions []action
}

func newCompiler(log *logging, name string, dict *Dictionary) *compiler {
	return &compiler{log: log, name: name, dict: dict}
}

// addWord resolves token now, so later redefinitions of a name do not affect
// this definition.
func (c *compiler) addWord(token Token) error {
	text := token.Text
	var act action
	if def, ok := c.dict.lookup(text); ok {
		if def.isControl() {
			act = controlAction(def.ctl)
		} else {
			act = action{op: opCall, name: strings.ToLower(text), word: def.word}
		}
	} else if n, ok := parseNumber(text); ok {
		act = action{op: opLiteral, n: n}
	} else if token.IsString {
		act = action{op: opText, text: text}
	} else if text == ";" {
		return nil
	} else {
		return MissingWordError{text}
	}
	c.log.logf("+", "%v[%v] %v", c.name, len(c.actions), act)
	c.actions = append(c.actions, act)
	return nil
}

// compile adds the definition to the dictionary, shadowing any prior word of
// the same name.
func (c *compiler) compile() {
	code := make([]action, len(c.actions))
	copy(code, c.actions)
	c.log.logf(";", "%v compiled %v actions", c.name, len(code))
	c.dict.add(c.name, definition{
		word: replay(c.log, c.name, code),
		code: code,
	})
}

// frame tracks one open if; parent is false when an enclosing branch is
// being skipped, in which case nothing inside runs and nothing is popped.
type frame struct {
	parent bool
	inIf   bool
	cond   bool
}

type frames []frame

func (fs frames) shouldExecute() bool {
	if i := len(fs) - 1; i >= 0 {
		top := fs[i]
		return top.parent && top.cond == top.inIf
	}
	return true
}

func replay(log *logging, name string, code []action) Word {
	return func(st *Stack, dict *Dictionary) (string, error) {
		defer log.withLogPrefix("  ")()
		var (
			out strings.Builder
			fs  frames
		)
		for _, act := range code {
			switch act.op {
			case opIf:
				f := frame{parent: fs.shouldExecute(), inIf: true}
				if f.parent {
					val, err := st.Pop()
					if err != nil {
						return "", err
					}
					f.cond = val != FALSE
				}
				fs = append(fs, f)

			case opElse:
				i := len(fs) - 1
				if i < 0 {
					panic(controlError{name, "else"})
				}
				fs[i].inIf = false

			case opThen:
				i := len(fs) - 1
				if i < 0 {
					panic(controlError{name, "then"})
				}
				fs = fs[:i]

			default:
				if !fs.shouldExecute() {
					continue
				}
				log.logf("@", "%v %v", name, act)
				text, err := act.run(st, dict)
				if err != nil {
					return "", err
				}
				out.WriteString(text)
			}
		}
		if len(fs) != 0 {
			panic(controlError{name, "end"})
		}
		return out.String(), nil
	}
}
