package scan

import (
	"errors"

	"flint/internal/source"
	"flint/internal/token"
)

// ErrUnbalanced signals unparseable or truncated input: an unmatched
// delimiter reached the end of the stream, or a '}' arrived with nothing
// open. A check receiving it must stop and keep the findings it already
// emitted.
var ErrUnbalanced = errors.New("unbalanced or truncated token stream")

// FrameKind is the kind of a tracked lexical scope.
type FrameKind uint8

const (
	FrameClass FrameKind = iota
	FrameStruct
	FrameNamespace
)

func (k FrameKind) String() string {
	switch k {
	case FrameClass:
		return "class"
	case FrameStruct:
		return "struct"
	case FrameNamespace:
		return "namespace"
	}
	return "frame(?)"
}

// Access is a C++ member access level.
type Access uint8

const (
	AccessPrivate Access = iota
	AccessProtected
	AccessPublic
)

func (a Access) String() string {
	switch a {
	case AccessPrivate:
		return "private"
	case AccessProtected:
		return "protected"
	case AccessPublic:
		return "public"
	}
	return "access(?)"
}

// Base is one entry of a class inheritance list.
type Base struct {
	Access  Access
	Virtual bool
	Name    []string // qualified name parts, e.g. ["std", "exception"]
}

// Terminal returns the last name part of the base, or "".
func (b Base) Terminal() string {
	if len(b.Name) == 0 {
		return ""
	}
	return b.Name[len(b.Name)-1]
}

// Frame is one entry of the nested-scope stack.
type Frame struct {
	Kind FrameKind
	Name string // empty for anonymous scopes
	// NameSpan locates the scope's name token, or its '{' when anonymous.
	NameSpan  source.Span
	Access    Access // access level for subsequently declared members
	Anonymous bool
	// Ignore marks anonymous class-like frames, excluded from checks that
	// require a named type.
	Ignore bool
	Bases  []Base

	// Per-check state, reset at every frame push.
	SawVirtualMethod  bool
	SawDestructor     bool
	DestructorVirtual bool
	DestructorAccess  Access

	depth int // brace depth of the frame body
}

// IsClassLike reports whether the frame is a class or struct.
func (f *Frame) IsClassLike() bool {
	return f.Kind == FrameClass || f.Kind == FrameStruct
}

// Hooks receives scope events during a Walk. Any hook may be nil.
type Hooks struct {
	// EnterFrame fires right after the frame's '{' is consumed.
	EnterFrame func(f *Frame, c Cursor)
	// LeaveFrame fires at the frame's '}' before the frame is popped.
	LeaveFrame func(f *Frame, c Cursor)
	// OnToken fires for each token the tracker has not consumed itself.
	// It may advance the cursor (consume a construct) and return the new
	// position; returning the cursor unchanged lets the tracker proceed.
	OnToken func(c Cursor, t *Tracker) Cursor
}

// Tracker maintains the nested class/struct/namespace scope stack across one
// forward pass. It exposes both bookkeeping conventions used by checks: the
// named-frame stack (Current, Frames) and the raw brace-depth counter
// (BraceDepth).
type Tracker struct {
	frames        []Frame
	braceDepth    int
	descendBodies bool
}

// NewTracker returns a Tracker. With descendBodies false (the default for
// declaration-level checks) plain braces, such as function bodies,
// are skipped wholesale and never fire OnToken; with descendBodies true the
// tracker walks into them and BraceDepth reflects every open brace.
func NewTracker(descendBodies bool) *Tracker {
	return &Tracker{descendBodies: descendBodies}
}

// Current returns the innermost frame, or nil at file scope.
func (t *Tracker) Current() *Frame {
	if len(t.frames) == 0 {
		return nil
	}
	return &t.frames[len(t.frames)-1]
}

// CurrentClass returns the innermost frame if it is class-like, else nil.
func (t *Tracker) CurrentClass() *Frame {
	f := t.Current()
	if f == nil || !f.IsClassLike() {
		return nil
	}
	return f
}

// Frames returns the live stack, innermost last. Read-only.
func (t *Tracker) Frames() []Frame {
	return t.frames
}

// BraceDepth returns the raw brace depth at the current position.
func (t *Tracker) BraceDepth() int {
	return t.braceDepth
}

// AtFileScope reports whether no frame is open.
func (t *Tracker) AtFileScope() bool {
	return len(t.frames) == 0
}

// Walk drives the tracker over the stream from c. It returns nil on a clean
// pass and ErrUnbalanced on unparseable input; hooks already fired stay
// fired, so findings accumulated by the caller survive the abort.
func (t *Tracker) Walk(c Cursor, h Hooks) error {
	for !c.AtEnd() {
		if h.OnToken != nil {
			moved := h.OnToken(c, t)
			if moved.Pos() != c.Pos() {
				c = moved
				continue
			}
		}

		switch c.Kind() {
		case token.KwTemplate:
			// A template parameter list is not a scope: skip it whole.
			if c.PeekKind(1) == token.Lt {
				end, _ := SkipTemplateArgs(c.Next())
				if end.AtEnd() {
					return ErrUnbalanced
				}
				c = end.Next()
				continue
			}
			c = c.Next()

		case token.KwNamespace:
			next, err := t.enterNamespace(c, h)
			if err != nil {
				return err
			}
			c = next

		case token.KwClass, token.KwStruct:
			next, err := t.enterClass(c, h)
			if err != nil {
				return err
			}
			c = next

		case token.KwEnum, token.KwUnion:
			// Enum and union bodies contain nothing the frame checks care
			// about; skip the whole declaration.
			c = skipNonFrameType(c)

		case token.KwPublic, token.KwProtected, token.KwPrivate:
			if c.PeekKind(1) == token.Colon {
				if f := t.CurrentClass(); f != nil {
					switch c.Kind() {
					case token.KwPublic:
						f.Access = AccessPublic
					case token.KwProtected:
						f.Access = AccessProtected
					case token.KwPrivate:
						f.Access = AccessPrivate
					}
				}
				c = c.Next().Next()
				continue
			}
			c = c.Next()

		case token.LBrace:
			if t.descendBodies {
				t.braceDepth++
				c = c.Next()
				continue
			}
			// Not a frame brace: skip the body to keep the stack meaningful.
			end := SkipBraces(c)
			if end.AtEnd() {
				return ErrUnbalanced
			}
			c = end.Next()

		case token.RBrace:
			if err := t.closeBrace(c, h); err != nil {
				return err
			}
			c = c.Next()

		default:
			c = c.Next()
		}
	}

	if len(t.frames) > 0 || t.braceDepth > 0 {
		return ErrUnbalanced
	}
	return nil
}

// closeBrace handles a '}' in the main loop: pop a frame if one closes here.
func (t *Tracker) closeBrace(c Cursor, h Hooks) error {
	if t.braceDepth == 0 {
		return ErrUnbalanced
	}
	if f := t.Current(); f != nil && f.depth == t.braceDepth {
		if h.LeaveFrame != nil {
			h.LeaveFrame(f, c)
		}
		t.frames = t.frames[:len(t.frames)-1]
	}
	t.braceDepth--
	return nil
}

// enterNamespace handles the 'namespace' keyword: alias, forward
// declaration, or scope open.
func (t *Tracker) enterNamespace(c Cursor, h Hooks) (Cursor, error) {
	c = c.Next() // past 'namespace'

	// "namespace x = a::b;" is an alias, not a scope.
	if c.Kind() == token.Ident && c.PeekKind(1) == token.Assign {
		for !c.AtEnd() && c.Kind() != token.Semicolon {
			c = c.Next()
		}
		if c.AtEnd() {
			return c, ErrUnbalanced
		}
		return c.Next(), nil
	}

	name := ""
	var nameSpan source.Span
	for !c.AtEnd() {
		switch c.Kind() {
		case token.Ident:
			name = c.Text()
			nameSpan = c.Span()
			c = c.Next()
		case token.KwInline:
			c = c.Next()
		case token.Semicolon:
			// forward declaration, no push
			return c.Next(), nil
		case token.LBrace:
			t.push(Frame{
				Kind:      FrameNamespace,
				Name:      name,
				NameSpan:  nameSpan,
				Anonymous: name == "",
				Access:    AccessPublic,
			}, c, h)
			return c.Next(), nil
		default:
			// attribute or macro noise before the brace
			c = c.Next()
		}
	}
	return c, ErrUnbalanced
}

// enterClass handles 'class'/'struct': forward declaration, anonymous type,
// or scope open with an optional inheritance list.
func (t *Tracker) enterClass(c Cursor, h Hooks) (Cursor, error) {
	kind := FrameClass
	defaultAccess := AccessPrivate
	if c.Kind() == token.KwStruct {
		kind = FrameStruct
		defaultAccess = AccessPublic
	}
	c = c.Next() // past the class key

	name := ""
	var nameSpan source.Span
	var bases []Base
	for !c.AtEnd() {
		switch c.Kind() {
		case token.Ident:
			name = c.Text()
			nameSpan = c.Span()
			c = c.Next()
			// template specialization name: class Foo<int>
			if c.Kind() == token.Lt {
				end, _ := SkipTemplateArgs(c)
				if end.AtEnd() {
					return end, ErrUnbalanced
				}
				c = end.Next()
			}

		case token.Colon:
			var err error
			bases, c, err = parseBaseList(c.Next(), defaultAccess)
			if err != nil {
				return c, err
			}

		case token.Semicolon:
			// forward declaration (or elaborated type specifier), no push
			return c.Next(), nil

		case token.LBrace:
			t.push(Frame{
				Kind:      kind,
				Name:      name,
				NameSpan:  nameSpan,
				Access:    defaultAccess,
				Anonymous: name == "",
				Ignore:    name == "",
				Bases:     bases,
			}, c, h)
			return c.Next(), nil

		case token.Assign, token.LParen, token.RParen, token.Comma,
			token.Gt, token.Star, token.Amp:
			// "class" used as a type in a declaration or template parameter
			// list ("void f(class Foo*)"); not a scope open.
			return c, nil

		default:
			c = c.Next()
		}
	}
	return c, ErrUnbalanced
}

// parseBaseList reads base-specifiers after ':' up to (not consuming) '{'.
func parseBaseList(c Cursor, defaultAccess Access) ([]Base, Cursor, error) {
	var bases []Base
	cur := Base{Access: defaultAccess}
	seenName := false

	flush := func() {
		if seenName {
			bases = append(bases, cur)
		}
		cur = Base{Access: defaultAccess}
		seenName = false
	}

	for !c.AtEnd() {
		switch c.Kind() {
		case token.KwPublic:
			cur.Access = AccessPublic
			c = c.Next()
		case token.KwProtected:
			cur.Access = AccessProtected
			c = c.Next()
		case token.KwPrivate:
			cur.Access = AccessPrivate
			c = c.Next()
		case token.KwVirtual:
			cur.Virtual = true
			c = c.Next()
		case token.Ident, token.ColonColon:
			var parts []string
			parts, c = ReadQualifiedName(c)
			if parts == nil {
				c = c.Next()
				continue
			}
			cur.Name = parts
			seenName = true
			if c.Kind() == token.Lt {
				end, _ := SkipTemplateArgs(c)
				if end.AtEnd() {
					return bases, end, ErrUnbalanced
				}
				c = end.Next()
			}
		case token.Comma:
			flush()
			c = c.Next()
		case token.LBrace:
			flush()
			return bases, c, nil
		default:
			c = c.Next()
		}
	}
	return bases, c, ErrUnbalanced
}

func (t *Tracker) push(f Frame, c Cursor, h Hooks) {
	if f.NameSpan == (source.Span{}) {
		f.NameSpan = c.Span()
	}
	t.braceDepth++
	f.depth = t.braceDepth
	t.frames = append(t.frames, f)
	if h.EnterFrame != nil {
		h.EnterFrame(t.Current(), c)
	}
}

// skipNonFrameType skips an enum/union declaration: to the ';' of a forward
// declaration or past the matching '}' of the body.
func skipNonFrameType(c Cursor) Cursor {
	for !c.AtEnd() {
		switch c.Kind() {
		case token.Semicolon:
			return c.Next()
		case token.LBrace:
			end := SkipBraces(c)
			if end.AtEnd() {
				return end
			}
			return end.Next()
		}
		c = c.Next()
	}
	return c
}
