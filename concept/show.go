package concept

import (
	"strings"
)

// Key is the canonical syntax of a concept. Two concepts are equal iff their
// keys are equal; this is structural equality, not logical equivalence.
type Key string

// KeyOf renders c in canonical syntax. The output re-parses to an equal tree.
func KeyOf(c Concept) Key {
	ctx := newShowContext()
	ctx.showWalker(c)
	return Key(ctx.String())
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Concept) bool {
	return KeyOf(a) == KeyOf(b)
}

func (c *Atomic) String() string { return string(KeyOf(c)) }
func (c *Not) String() string    { return string(KeyOf(c)) }
func (c *And) String() string    { return string(KeyOf(c)) }
func (c *Or) String() string     { return string(KeyOf(c)) }
func (c *Only) String() string   { return string(KeyOf(c)) }
func (c *Some) String() string   { return string(KeyOf(c)) }

type showContext struct {
	*strings.Builder
}

func newShowContext() *showContext {
	return &showContext{
		Builder: &strings.Builder{},
	}
}

func (ctx *showContext) showWalker(c Concept) {
	switch c := c.(type) {
	case nil:
		ctx.WriteString("nil")
	case *Atomic:
		ctx.WriteString(c.Name)
	case *Not:
		ctx.WriteString("(not ")
		ctx.showWalker(c.Sub)
		ctx.WriteString(")")
	case *And:
		ctx.showList("and", c.Subs)
	case *Or:
		ctx.showList("or", c.Subs)
	case *Only:
		ctx.showRestriction("only", c.Relation, c.Sub)
	case *Some:
		ctx.showRestriction("some", c.Relation, c.Sub)
	}
}

func (ctx *showContext) showList(keyword string, subs []Concept) {
	ctx.WriteString("(")
	ctx.WriteString(keyword)
	ctx.WriteString(" (")
	for i, sub := range subs {
		if i > 0 {
			ctx.WriteString(" ")
		}
		ctx.showWalker(sub)
	}
	ctx.WriteString("))")
}

func (ctx *showContext) showRestriction(keyword string, r Relation, sub Concept) {
	ctx.WriteString("(")
	ctx.WriteString(keyword)
	ctx.WriteString(" ")
	ctx.WriteString(r.Name)
	ctx.WriteString(" ")
	ctx.showWalker(sub)
	ctx.WriteString(")")
}
