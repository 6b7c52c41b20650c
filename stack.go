package main

import (
	"strconv"
	"strings"
)

// Boolean results are pushed as all bits set (TRUE) or zero (FALSE).
const (
	FALSE = 0
	TRUE  = -1
)

// Stack is the data stack: a LIFO of integer cells.
type Stack struct {
	cells []int
}

func (st *Stack) Push(val int) {
	st.cells = append(st.cells, val)
}

// Pop removes and returns the top cell, or ErrStackUnderflow if empty.
func (st *Stack) Pop() (int, error) {
	i := len(st.cells) - 1
	if i < 0 {
		return 0, ErrStackUnderflow
	}
	val := st.cells[i]
	st.cells = st.cells[:i]
	return val, nil
}

// Len returns the stack depth.
func (st *Stack) Len() int { return len(st.cells) }

// Values returns a copy of the stack, bottom first.
func (st *Stack) Values() []int {
	return append([]int(nil), st.cells...)
}

// String renders the stack bottom to top followed by a top marker, e.g.
// "1 2 3 <- Top ".
func (st *Stack) String() string {
	var sb strings.Builder
	for i, val := range st.cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(val))
	}
	sb.WriteString(" <- Top ")
	return sb.String()
}

func boolCell(b bool) int {
	if b {
		return TRUE
	}
	return FALSE
}
