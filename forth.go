package main

import (
	"strings"

	"github.com/alecthomas/repr"
)

// Forth is an interpreter session: one data stack and one dictionary, fed a
// line at a time.
type Forth struct {
	Core

	stack Stack
	dict  Dictionary

	inDefinition bool
	current      *compiler
}

// ReadLine interprets one line of input, returning the response text:
//   - " <output> ok" after running the line
//   - "  ok" after a line that closes a definition
//   - "" after a line that continues a definition
//   - " <message>" after an error, which aborts any open definition
func (f *Forth) ReadLine(line string) string {
	f.logf(">", "%q", line)
	resp := f.readLine(line)
	if f.logfn != nil {
		f.logf("<", "%q stack:%v", resp, repr.String(f.stack.cells))
	}
	return resp
}

func (f *Forth) readLine(line string) string {
	tok := NewTokenizer(line)

	if tok.IsDefinitionStart() {
		if err := f.startDefinition(tok); err != nil {
			return f.fail(err)
		}
	}

	if f.inDefinition {
		for tok.HasMore() {
			token, err := tok.NextToken()
			if err == nil {
				err = f.current.addWord(token)
			}
			if err != nil {
				f.endDefinition()
				return f.fail(err)
			}
		}
		if tok.IsDefinitionEnd() {
			f.current.compile()
			f.endDefinition()
			return "  ok"
		}
		return ""
	}

	var out strings.Builder
	for tok.HasMore() {
		token, err := tok.NextToken()
		if err == nil {
			err = f.execute(token, &out)
		}
		if err != nil {
			return f.fail(err)
		}
	}
	return " " + out.String() + " ok"
}

// startDefinition drops the leading ":" token and reads the new word's name.
func (f *Forth) startDefinition(tok *Tokenizer) error {
	f.endDefinition()
	if _, err := tok.NextToken(); err != nil {
		return err
	}
	name, err := tok.NextToken()
	if err != nil {
		return err
	}
	f.logf(":", "%v", name.Text)
	f.inDefinition = true
	f.current = newCompiler(&f.logging, name.Text, &f.dict)
	return nil
}

func (f *Forth) endDefinition() {
	f.inDefinition = false
	f.current = nil
}

// execute runs one token in immediate mode. String literals do nothing here;
// they only produce output when compiled into a definition.
func (f *Forth) execute(token Token, out *strings.Builder) error {
	if token.IsString {
		return nil
	}
	text := token.Text
	if def, ok := f.dict.lookup(text); ok {
		if def.isControl() {
			return CompileOnlyError{text}
		}
		res, err := def.word(&f.stack, &f.dict)
		out.WriteString(res)
		return err
	}
	if n, ok := parseNumber(text); ok {
		f.stack.Push(n)
		return nil
	}
	if text == ";" {
		return nil
	}
	return MissingWordError{text}
}

// fail turns a recoverable error into a response; anything else is an
// interpreter fault.
func (f *Forth) fail(err error) string {
	if !recoverable(err) {
		panic(err)
	}
	f.logf("!", "%v", err)
	return " " + err.Error()
}

// StackDisplay renders the stack, e.g. "1 2 3 <- Top ".
func (f *Forth) StackDisplay() string { return f.stack.String() }

// InDefinition returns true while a definition spans multiple lines.
func (f *Forth) InDefinition() bool { return f.inDefinition }
