package artifact

import (
	"fmt"
	"strings"
)

// Kind discriminates artifact values.
type Kind string

const (
	KindText  Kind = "text"
	KindError Kind = "error"
	KindInfo  Kind = "info"
	KindList  Kind = "list"
)

// Artifact is the result wrapper every tool activity returns.
type Artifact interface {
	Kind() Kind
	// ToText renders the payload as plain text for LLM-facing output.
	ToText() string
}

// Text carries a textual payload. Name is optional and used to derive
// per-artifact file names when a list is fanned out to disk.
type Text struct {
	Name  string
	Value string
}

func NewText(value string) Text { return Text{Value: value} }

// NewNamedText returns a Text artifact carrying an explicit name.
func NewNamedText(name, value string) Text { return Text{Name: name, Value: value} }

func (t Text) Kind() Kind     { return KindText }
func (t Text) ToText() string { return t.Value }

// Error carries a human-readable failure message. Activities return it
// instead of propagating Go errors past the method boundary.
type Error struct {
	Message string
}

func NewError(message string) Error { return Error{Message: message} }

// Errorf formats a failure message in the manner of fmt.Sprintf.
func Errorf(format string, args ...any) Error {
	return Error{Message: fmt.Sprintf(format, args...)}
}

func (e Error) Kind() Kind     { return KindError }
func (e Error) ToText() string { return e.Message }

// Info carries a short status confirmation for side-effecting activities.
type Info struct {
	Value string
}

func NewInfo(value string) Info { return Info{Value: value} }

func (i Info) Kind() Kind     { return KindInfo }
func (i Info) ToText() string { return i.Value }

// List is an ordered collection of nested artifacts.
type List struct {
	Values []Artifact
}

func NewList(values ...Artifact) List { return List{Values: values} }

func (l List) Kind() Kind { return KindList }

// ToText joins the nested payloads with newlines.
func (l List) ToText() string {
	parts := make([]string, 0, len(l.Values))
	for _, v := range l.Values {
		parts = append(parts, v.ToText())
	}
	return strings.Join(parts, "\n")
}
