package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Primitives pop their operands top first: for "a b -", b pops before a.

func pop2(st *Stack) (a, b int, err error) {
	if b, err = st.Pop(); err == nil {
		a, err = st.Pop()
	}
	return a, b, err
}

func binop(op func(a, b int) int) Word {
	return func(st *Stack, _ *Dictionary) (string, error) {
		a, b, err := pop2(st)
		if err != nil {
			return "", err
		}
		st.Push(op(a, b))
		return "", nil
	}
}

func divop(op func(a, b int) []int) Word {
	return func(st *Stack, _ *Dictionary) (string, error) {
		a, b, err := pop2(st)
		if err != nil {
			return "", err
		}
		if b == 0 {
			return "", ErrDivisionByZero
		}
		for _, val := range op(a, b) {
			st.Push(val)
		}
		return "", nil
	}
}

func compare(op func(a, b int) bool) Word {
	return binop(func(a, b int) int { return boolCell(op(a, b)) })
}

// floorDiv and floorMod round towards negative infinity, so the remainder
// takes the sign of the divisor.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func dot(st *Stack, _ *Dictionary) (string, error) {
	val, err := st.Pop()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(val) + " ", nil
}

func dotS(st *Stack, _ *Dictionary) (string, error) {
	return "\n" + st.String(), nil
}

// emit outputs the character whose code is the low 16 bits of the cell;
// surrogate halves come out as U+FFFD.
func emit(st *Stack, _ *Dictionary) (string, error) {
	val, err := st.Pop()
	if err != nil {
		return "", err
	}
	return string(rune(uint16(val))), nil
}

const maxSpaces = 1 << 16

func spaces(st *Stack, _ *Dictionary) (string, error) {
	n, err := st.Pop()
	if err != nil || n <= 0 {
		return "", err
	}
	if n > maxSpaces {
		return "", ErrTooManySpaces
	}
	return strings.Repeat(" ", n), nil
}

// shuffle pops n cells and pushes them back in the order given by perm,
// which indexes the popped cells deepest first.
func shuffle(n int, perm ...int) Word {
	return func(st *Stack, _ *Dictionary) (string, error) {
		if st.Len() < n {
			return "", ErrStackUnderflow
		}
		args := make([]int, n)
		for i := n - 1; i >= 0; i-- {
			args[i], _ = st.Pop()
		}
		for _, i := range perm {
			st.Push(args[i])
		}
		return "", nil
	}
}

func (f *Forth) compileBuiltins() {
	dict := &f.dict

	dict.Add(".", dot)
	dict.Add(".s", dotS)
	dict.Add("+", binop(func(a, b int) int { return a + b }))
	dict.Add("*", binop(func(a, b int) int { return a * b }))
	dict.Add("/", divop(func(a, b int) []int { return []int{floorDiv(a, b)} }))
	dict.Add("/mod", divop(func(a, b int) []int { return []int{floorMod(a, b), floorDiv(a, b)} }))
	dict.Add("mod", divop(func(a, b int) []int { return []int{floorMod(a, b)} }))
	dict.Add("=", compare(func(a, b int) bool { return a == b }))
	dict.Add("<", compare(func(a, b int) bool { return a < b }))
	dict.Add(">", compare(func(a, b int) bool { return a > b }))
	dict.Add("emit", emit)
	dict.Add("swap", shuffle(2, 1, 0))    // a b -- b a
	dict.Add("dup", shuffle(1, 0, 0))     // a -- a a
	dict.Add("over", shuffle(2, 0, 1, 0)) // a b -- a b a
	dict.Add("rot", shuffle(3, 1, 2, 0))  // a b c -- b c a
	dict.Add("drop", shuffle(1))          // a --

	dict.addControl("if", ctlIf)
	dict.addControl("else", ctlElse)
	dict.addControl("then", ctlThen)

	for _, line := range []string{
		": cr 10 emit ;",
		": space 32 emit ;",
	} {
		if resp := f.ReadLine(line); resp != "  ok" {
			panic(fmt.Sprintf("builtin definition %q failed:%v", line, resp))
		}
	}

	dict.Add("spaces", spaces)
}
