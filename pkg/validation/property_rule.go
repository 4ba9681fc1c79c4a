package validation

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/validationkit/pkg/execctx"
)

// Builder is where property pipelines get registered. *Validator and
// *RuleSet implement it.
type Builder[E any] interface {
	addRule(r entityRule[E])
	addMeta(meta propertyMeta[E])
	lookup(name string) (propertyMeta[E], bool)
}

// entityRule is one step of an entity validator: a property pipeline, a rule
// set or an include.
type entityRule[E any] interface {
	validate(ctx context.Context, r *Result[E]) error
}

type propertyMeta[E any] struct {
	name     string
	jsonName string
	text     string
	value    func(E) any
}

// PropertyOption customizes the naming of a property.
type PropertyOption func(*propertyNames)

type propertyNames struct {
	jsonName string
	text     string
}

// WithJSONName sets the wire name of the property. Defaults to the lower
// camel case form of the native name.
func WithJSONName(name string) PropertyOption {
	return func(n *propertyNames) {
		n.jsonName = name
	}
}

// WithText sets the display text of the property. Defaults to the native name
// split into title-cased words.
func WithText(text string) PropertyOption {
	return func(n *propertyNames) {
		n.text = text
	}
}

type ruleEntry[P any] struct {
	rule    Rule[P]
	clauses []Clause[P]
}

// PropertyRule is the validation pipeline of one property of E.
//
// Clauses added before the first rule gate the whole pipeline; clauses added
// after a rule gate only that rule. Rules run in the order added and the
// pipeline stops at the first rule that records an error.
type PropertyRule[E, P any] struct {
	owner    Builder[E]
	name     string
	jsonName string
	text     string
	get      func(E) P
	set      func(E, P)
	clauses  []Clause[P]
	rules    []*ruleEntry[P]
}

// Property registers a pipeline for the named property of E on the builder.
func Property[E, P any](b Builder[E], name string, get func(E) P, opts ...PropertyOption) *PropertyRule[E, P] {
	if b == nil {
		mustConfig("Property", fmt.Sprintf("builder for %q is nil", name), ErrNilValidator)
	}
	if name == "" {
		mustConfig("Property", "property name is empty", nil)
	}
	if get == nil {
		mustConfig("Property", fmt.Sprintf("getter for %q is nil", name), nil)
	}

	r := newPropertyRule(name, get, opts...)
	r.owner = b
	b.addRule(r)
	b.addMeta(propertyMeta[E]{
		name:     r.name,
		jsonName: r.jsonName,
		text:     r.text,
		value:    func(e E) any { return get(e) },
	})
	return r
}

func newPropertyRule[E, P any](name string, get func(E) P, opts ...PropertyOption) *PropertyRule[E, P] {
	n := propertyNames{}
	for _, opt := range opts {
		opt(&n)
	}
	if n.jsonName == "" && name != "" {
		n.jsonName = JSONName(name)
	}
	if n.text == "" && name != "" {
		n.text = DisplayText(name)
	}
	return &PropertyRule[E, P]{
		name:     name,
		jsonName: n.jsonName,
		text:     n.text,
		get:      get,
	}
}

// Name returns the native property name.
func (r *PropertyRule[E, P]) Name() string { return r.name }

// JSONName returns the wire property name.
func (r *PropertyRule[E, P]) JSONName() string { return r.jsonName }

// Text returns the display text.
func (r *PropertyRule[E, P]) Text() string { return r.text }

// Setter enables value write-back for Default and Override. E must be a
// pointer type for the write to reach the caller.
func (r *PropertyRule[E, P]) Setter(set func(E, P)) *PropertyRule[E, P] {
	r.set = set
	return r
}

// Clause adds a clause. Before any rule it gates the whole pipeline,
// afterwards it gates the most recently added rule.
func (r *PropertyRule[E, P]) Clause(c Clause[P]) *PropertyRule[E, P] {
	if c == nil {
		mustConfig("Clause", fmt.Sprintf("nil clause on %q", r.name), ErrNilClause)
	}
	if len(r.rules) == 0 {
		r.clauses = append(r.clauses, c)
		return r
	}
	last := r.rules[len(r.rules)-1]
	last.clauses = append(last.clauses, c)
	return r
}

func (r *PropertyRule[E, P]) When(condition bool) *PropertyRule[E, P] {
	return r.Clause(When[P](condition))
}

func (r *PropertyRule[E, P]) WhenValue(pred func(P) bool) *PropertyRule[E, P] {
	return r.Clause(WhenValue(pred))
}

func (r *PropertyRule[E, P]) WhenHasValue() *PropertyRule[E, P] {
	return r.Clause(WhenHasValue[P]())
}

func (r *PropertyRule[E, P]) WhenEntity(pred func(E) bool) *PropertyRule[E, P] {
	return r.Clause(WhenEntity[E, P](pred))
}

func (r *PropertyRule[E, P]) WhenOperation(ops ...execctx.OperationType) *PropertyRule[E, P] {
	return r.Clause(WhenOperation[P](ops...))
}

// DependsOn gates on another registered property being specified and free
// of errors. The other property must be registered first.
func (r *PropertyRule[E, P]) DependsOn(name string) *PropertyRule[E, P] {
	meta := r.mustLookup("DependsOn", name)
	return r.Clause(DependsOn[E, P](meta.property(), meta.value))
}

// Add appends a rule.
func (r *PropertyRule[E, P]) Add(rule Rule[P]) *PropertyRule[E, P] {
	if rule == nil {
		mustConfig("Add", fmt.Sprintf("nil rule on %q", r.name), ErrNilRule)
	}
	r.rules = append(r.rules, &ruleEntry[P]{rule: rule})
	return r
}

// Custom appends a rule implemented by fn.
func (r *PropertyRule[E, P]) Custom(fn func(ctx context.Context, pc *PropertyContext[P]) error) *PropertyRule[E, P] {
	if fn == nil {
		mustConfig("Custom", fmt.Sprintf("nil rule on %q", r.name), ErrNilRule)
	}
	return r.Add(RuleFunc[P](fn))
}

func (r *PropertyRule[E, P]) Mandatory(opts ...RuleOption) *PropertyRule[E, P] {
	return r.Add(Mandatory[P](opts...))
}

func (r *PropertyRule[E, P]) None(opts ...RuleOption) *PropertyRule[E, P] {
	return r.Add(None[P](opts...))
}

func (r *PropertyRule[E, P]) Must(pred func(P) bool, opts ...RuleOption) *PropertyRule[E, P] {
	return r.Add(Must(pred, opts...))
}

func (r *PropertyRule[E, P]) Compare(op CompareOperator, value P, opts ...RuleOption) *PropertyRule[E, P] {
	return r.Add(Compare(op, value, opts...))
}

// CompareProperty compares against another registered property of the same
// entity. The rule is skipped when the other property already has an error.
func (r *PropertyRule[E, P]) CompareProperty(op CompareOperator, name string, opts ...RuleOption) *PropertyRule[E, P] {
	meta := r.mustLookup("CompareProperty", name)
	other := meta.property()
	cfg := newRuleConfig(op.text(), opts)
	return r.Custom(func(_ context.Context, pc *PropertyContext[P]) error {
		if pc.Parent.HasPropertyError(other) {
			return nil
		}
		entity, err := entityOf[E](pc, "CompareProperty")
		if err != nil {
			return err
		}
		return compareRule(pc, op, meta.value(entity), cfg.compareArg(other.Text), cfg.text)
	})
}

func (r *PropertyRule[E, P]) Between(from, to P, opts ...RuleOption) *PropertyRule[E, P] {
	return r.Add(Between(from, to, opts...))
}

func (r *PropertyRule[E, P]) Default(fn func() P) *PropertyRule[E, P] {
	return r.Add(Default(fn))
}

// Override replaces the value with fn(entity), writing it back through the
// setter when one is configured.
func (r *PropertyRule[E, P]) Override(fn func(E) P) *PropertyRule[E, P] {
	if fn == nil {
		mustConfig("Override", fmt.Sprintf("nil override on %q", r.name), ErrNilRule)
	}
	return r.Custom(func(_ context.Context, pc *PropertyContext[P]) error {
		entity, err := entityOf[E](pc, "Override")
		if err != nil {
			return err
		}
		pc.OverrideValue(fn(entity))
		return nil
	})
}

// Immutable reports an error when allowed(entity) is false.
func (r *PropertyRule[E, P]) Immutable(allowed func(E) bool, opts ...RuleOption) *PropertyRule[E, P] {
	if allowed == nil {
		mustConfig("Immutable", fmt.Sprintf("nil predicate on %q", r.name), ErrNilRule)
	}
	cfg := newRuleConfig(TextImmutable, opts)
	return r.Custom(func(_ context.Context, pc *PropertyContext[P]) error {
		entity, err := entityOf[E](pc, "Immutable")
		if err != nil {
			return err
		}
		if !allowed(entity) {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}

func (r *PropertyRule[E, P]) Exists(checker Checker[P], opts ...RuleOption) *PropertyRule[E, P] {
	return r.Add(Exists(checker, opts...))
}

func (r *PropertyRule[E, P]) Common(cv *CommonValidator[P]) *PropertyRule[E, P] {
	return r.Add(Common(cv))
}

func (r *PropertyRule[E, P]) Entity(v Interface[P]) *PropertyRule[E, P] {
	return r.Add(Entity(v))
}

func (r *PropertyRule[E, P]) Collection(v Interface[P]) *PropertyRule[E, P] {
	return r.Add(Collection(v))
}

func (r *PropertyRule[E, P]) Dictionary(v Interface[P]) *PropertyRule[E, P] {
	return r.Add(Dictionary(v))
}

func (r *PropertyRule[E, P]) mustLookup(op, name string) propertyMeta[E] {
	if r.owner == nil {
		mustConfig(op, fmt.Sprintf("%q is not registered on an entity validator", r.name), nil)
	}
	meta, ok := r.owner.lookup(name)
	if !ok {
		mustConfig(op, fmt.Sprintf("property %q referenced by %q is not registered", name, r.name), nil)
	}
	return meta
}

func (r *PropertyRule[E, P]) validate(ctx context.Context, res *Result[E]) error {
	if sel := res.SelectedPropertyName(); sel != "" && sel != r.name && sel != r.jsonName {
		return nil
	}
	entity := res.Value
	var set func(P)
	if r.set != nil {
		set = func(v P) { r.set(entity, v) }
	}
	pc := newPropertyContext(res.Context, r.name, r.jsonName, r.text, r.get(entity), set)
	return r.invoke(ctx, pc)
}

// invoke runs the pipeline against an existing property context.
func (r *PropertyRule[E, P]) invoke(ctx context.Context, pc *PropertyContext[P]) error {
	ok, err := checkClauses(ctx, r.clauses, pc)
	if err != nil || !ok {
		return err
	}
	for _, e := range r.rules {
		ok, err := checkClauses(ctx, e.clauses, pc)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := e.rule.Validate(ctx, pc); err != nil {
			return err
		}
		if pc.HasError {
			break
		}
	}
	return nil
}

func (m propertyMeta[E]) property() PropertyRef {
	return PropertyRef{Name: m.name, JSONName: m.jsonName, Text: m.text}
}
