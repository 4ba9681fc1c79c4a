package validation

import (
	"maps"
	"slices"
)

// PropertyRef describes a property a message is recorded against.
// JSONName and Text are derived from Name when empty.
type PropertyRef struct {
	Name     string
	JSONName string
	Text     string
	Value    any
}

func (p PropertyRef) normalize() PropertyRef {
	if p.JSONName == "" {
		p.JSONName = JSONName(p.Name)
	}
	if p.Text == "" {
		p.Text = DisplayText(p.Name)
	}
	return p
}

// Context accumulates the findings of one validation run over one subject.
//
// The error index maps a fully-qualified path to the first error recorded for
// it; later errors on the same path are kept in the message list but never
// replace the index entry. HasErrors turns true with the first error appended,
// whether added directly or merged from a nested run, and never turns back.
type Context struct {
	value     any
	args      Args
	messages  Messages
	index     map[string]Message
	hasErrors bool
}

// NewContext creates a Context for the subject value.
func NewContext(value any, args Args) *Context {
	return &Context{
		value: value,
		args:  args,
		index: make(map[string]Message),
	}
}

// Value returns the subject being validated.
func (c *Context) Value() any { return c.value }

// Args returns a copy of the run arguments.
func (c *Context) Args() Args {
	a := c.args
	a.Config = maps.Clone(c.args.Config)
	return a
}

// Config returns a caller-supplied configuration value.
func (c *Context) Config(key string) (any, bool) {
	v, ok := c.args.Config[key]
	return v, ok
}

func (c *Context) UseJSONNames() bool                   { return c.args.UseJSONNames }
func (c *Context) ShallowValidation() bool              { return c.args.ShallowValidation }
func (c *Context) SelectedPropertyName() string         { return c.args.SelectedPropertyName }
func (c *Context) FullyQualifiedEntityName() string     { return c.args.FullyQualifiedEntityName }
func (c *Context) FullyQualifiedJSONEntityName() string { return c.args.FullyQualifiedJSONEntityName }

// FullyQualifiedPropertyName returns the active (native or wire) path of a property.
func (c *Context) FullyQualifiedPropertyName(p PropertyRef) string {
	p = p.normalize()
	if c.args.UseJSONNames {
		return JoinPath(c.args.FullyQualifiedJSONEntityName, p.JSONName)
	}
	return JoinPath(c.args.FullyQualifiedEntityName, p.Name)
}

// Messages returns the messages recorded so far.
func (c *Context) Messages() Messages {
	return slices.Clone(c.messages)
}

func (c *Context) HasErrors() bool { return c.hasErrors }

// HasError reports whether an error has been recorded for the fully-qualified path.
func (c *Context) HasError(path string) bool {
	_, ok := c.index[path]
	return ok
}

// HasPropertyError reports whether an error has been recorded for the property.
func (c *Context) HasPropertyError(p PropertyRef) bool {
	return c.HasError(c.FullyQualifiedPropertyName(p))
}

// ErrorIndex returns a copy of the path to first-error index.
func (c *Context) ErrorIndex() map[string]Message {
	return maps.Clone(c.index)
}

// AddMessage appends a message and updates the error bookkeeping.
func (c *Context) AddMessage(m Message) {
	c.messages = append(c.messages, m)
	if m.Type != TypeError {
		return
	}
	c.hasErrors = true
	if _, ok := c.index[m.Property]; !ok {
		c.index[m.Property] = m
	}
}

// AddError records an error against the property. The display text and the
// current value are prepended to args as %{0} and %{1}.
func (c *Context) AddError(p PropertyRef, format Text, args ...any) Message {
	return c.add(TypeError, p, format, args)
}

func (c *Context) AddWarning(p PropertyRef, format Text, args ...any) Message {
	return c.add(TypeWarning, p, format, args)
}

func (c *Context) AddInfo(p PropertyRef, format Text, args ...any) Message {
	return c.add(TypeInfo, p, format, args)
}

func (c *Context) add(t MessageType, p PropertyRef, format Text, args []any) Message {
	p = p.normalize()
	m := Message{
		Property: c.FullyQualifiedPropertyName(p),
		Type:     t,
		Text:     format.With(append([]any{p.Text, p.Value}, args...)...),
	}
	c.AddMessage(m)
	return m
}

// Check adds an error for the property when failed is true and the property
// has no error yet. It reports whether an error was added.
func (c *Context) Check(p PropertyRef, failed bool, format Text, args ...any) bool {
	if !failed || c.HasPropertyError(p) {
		return false
	}
	c.AddError(p, format, args...)
	return true
}

// MergeResult appends every message of another outcome.
func (c *Context) MergeResult(o Outcome) {
	if o == nil {
		return
	}
	c.MergeMessages(o.Messages())
}

// MergeMessages appends every message of the list.
func (c *Context) MergeMessages(ms Messages) {
	for _, m := range ms {
		c.AddMessage(m)
	}
}

// Err converts the context into a *ValidationError when it has errors.
func (c *Context) Err() error {
	return ErrorFrom(c, false)
}

// Result is the typed outcome of an entity validation.
type Result[E any] struct {
	*Context
	Value E

	props map[string]propertyMeta[E]
}

func newResult[E any](value E, args Args, props map[string]propertyMeta[E]) *Result[E] {
	return &Result[E]{
		Context: NewContext(value, args),
		Value:   value,
		props:   props,
	}
}

// Property returns the descriptor of a registered property, including its
// current value. Unregistered names get derived wire name and text.
func (r *Result[E]) Property(name string) PropertyRef {
	if meta, ok := r.props[name]; ok {
		return PropertyRef{
			Name:     meta.name,
			JSONName: meta.jsonName,
			Text:     meta.text,
			Value:    meta.value(r.Value),
		}
	}
	return PropertyRef{Name: name}.normalize()
}
