package token

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a single positioned error produced while lexing, parsing or
// resolving a source file.
type Error struct {
	Pos Pos
	Msg string
}

func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return "Error: " + e.Msg
	}
	return fmt.Sprintf("[line %d] Error: %s", e.Pos.Line(), e.Msg)
}

// ErrorList is a list of *Error, collected so that a phase (lexing,
// parsing) can report more than one independent error from a single run.
type ErrorList []*Error

// Add appends an error at the given position to the list. It matches the
// signature expected by scanner/parser callbacks.
func (l *ErrorList) Add(pos Pos, msg string) {
	*l = append(*l, &Error{Pos: pos, Msg: msg})
}

func (l ErrorList) Len() int      { return len(l) }
func (l ErrorList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }
func (l ErrorList) Less(i, j int) bool {
	return l[i].Pos.Line() < l[j].Pos.Line() ||
		(l[i].Pos.Line() == l[j].Pos.Line() && l[i].Pos.Col() < l[j].Pos.Col())
}

// Sort sorts the list by position.
func (l ErrorList) Sort() { sort.Sort(l) }

// Err returns l as an error if it is non-empty, otherwise nil.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var sb strings.Builder
	for i, e := range l {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}
