package validation

// PropertyContext is the per-run state of one property flowing through its pipeline.
type PropertyContext[P any] struct {
	Parent *Context

	Name     string
	JSONName string
	Text     string

	FullyQualifiedName     string
	FullyQualifiedJSONName string

	Value    P
	HasError bool

	set func(P)
}

// newPropertyContext creates the context of a genuine child property: its
// path is the parent entity path joined with the property name.
func newPropertyContext[P any](parent *Context, name, jsonName, text string, value P, set func(P)) *PropertyContext[P] {
	return &PropertyContext[P]{
		Parent:                 parent,
		Name:                   name,
		JSONName:               jsonName,
		Text:                   text,
		FullyQualifiedName:     JoinPath(parent.FullyQualifiedEntityName(), name),
		FullyQualifiedJSONName: JoinPath(parent.FullyQualifiedJSONEntityName(), jsonName),
		Value:                  value,
		set:                    set,
	}
}

// newValuePropertyContext creates the context of a bare value validated
// directly: the path is the parent's own path and the last path segment
// becomes the implied name. Explicit names, when given, win.
func newValuePropertyContext[P any](parent *Context, name, jsonName, text string, value P, set func(P)) *PropertyContext[P] {
	fq := parent.FullyQualifiedEntityName()
	fqJSON := parent.FullyQualifiedJSONEntityName()

	if name == "" {
		name = LastSegment(fq)
	}
	if jsonName == "" {
		jsonName = LastSegment(fqJSON)
	}
	if name == "" {
		name = defaultValueName
	}
	if jsonName == "" {
		jsonName = JSONName(name)
	}
	if text == "" {
		text = parent.args.text
	}
	if text == "" {
		text = DisplayText(name)
	}
	if fq == "" {
		fq = name
	}
	if fqJSON == "" {
		fqJSON = jsonName
	}

	return &PropertyContext[P]{
		Parent:                 parent,
		Name:                   name,
		JSONName:               jsonName,
		Text:                   text,
		FullyQualifiedName:     fq,
		FullyQualifiedJSONName: fqJSON,
		Value:                  value,
		set:                    set,
	}
}

// Entity returns the subject owning the property.
func (pc *PropertyContext[P]) Entity() any {
	return pc.Parent.Value()
}

// Path returns the active (native or wire) fully-qualified path.
func (pc *PropertyContext[P]) Path() string {
	if pc.Parent.UseJSONNames() {
		return pc.FullyQualifiedJSONName
	}
	return pc.FullyQualifiedName
}

// Property returns the descriptor of this property with its current value.
func (pc *PropertyContext[P]) Property() PropertyRef {
	return PropertyRef{Name: pc.Name, JSONName: pc.JSONName, Text: pc.Text, Value: pc.Value}
}

// CreateError records an error for the property and marks it as failed.
func (pc *PropertyContext[P]) CreateError(format Text, args ...any) Message {
	pc.HasError = true
	return pc.create(TypeError, format, args)
}

func (pc *PropertyContext[P]) CreateWarning(format Text, args ...any) Message {
	return pc.create(TypeWarning, format, args)
}

func (pc *PropertyContext[P]) CreateInfo(format Text, args ...any) Message {
	return pc.create(TypeInfo, format, args)
}

func (pc *PropertyContext[P]) create(t MessageType, format Text, args []any) Message {
	m := Message{
		Property: pc.Path(),
		Type:     t,
		Text:     format.With(append([]any{pc.Text, pc.Value}, args...)...),
	}
	pc.Parent.AddMessage(m)
	return m
}

// MergeResult merges a nested outcome and marks the property as failed when
// the outcome has errors.
func (pc *PropertyContext[P]) MergeResult(o Outcome) {
	if o == nil {
		return
	}
	pc.Parent.MergeResult(o)
	if o.HasErrors() {
		pc.HasError = true
	}
}

// OverrideValue replaces the in-flight value and writes it back to the subject
// when the pipeline has a setter.
func (pc *PropertyContext[P]) OverrideValue(v P) {
	pc.Value = v
	if pc.set != nil {
		pc.set(v)
	}
}

// childArgs derives the args for a nested run rooted at this property.
func (pc *PropertyContext[P]) childArgs(segment, jsonSegment string) (Args, error) {
	return pc.Parent.args.child(
		JoinPath(pc.FullyQualifiedName, segment),
		JoinPath(pc.FullyQualifiedJSONName, jsonSegment),
		pc.Text,
	)
}
