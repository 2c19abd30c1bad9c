// Package invariant reports broken simulation invariants. A violation is a
// programming error: it aborts the current tick with enough context to
// reproduce it (phase, entities, positions).
package invariant

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Violation describes a broken invariant. It is raised with panic and
// recovered at the session boundary.
type Violation struct {
	Phase  string
	Msg    string
	Fields map[string]any
}

func (v *Violation) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invariant violated in %s: %s", v.Phase, v.Msg)
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, v.Fields[k])
	}
	return b.String()
}

// Raise panics with a *Violation.
func Raise(phase, msg string, fields map[string]any) {
	panic(&Violation{Phase: phase, Msg: msg, Fields: fields})
}

// Recover converts a *Violation panic into an error stored in *err. Any
// other panic value is re-raised. Use as: defer invariant.Recover(&err).
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if v, ok := r.(*Violation); ok {
		*err = v
		return
	}
	panic(r)
}

// As extracts a *Violation from err.
func As(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
