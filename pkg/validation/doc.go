// Package validation provides a declarative, composable validation engine for
// entities, collections, dictionaries and single values.
//
// A Validator registers one PropertyRule per property. Each property owns a
// pipeline of Rules gated by Clauses; the pipeline stops at the first error
// recorded for that property, while every other property is still checked.
// Findings are collected as Messages (errors, warnings, infos) on a Context
// whose error index keeps the first error per fully-qualified path.
//
// # Architecture
//
// Core building blocks:
//   - Rule / RuleFunc         – a single check over a property value
//   - Clause / ClauseFunc     – a condition gating a pipeline or the previous rule
//   - PropertyRule            – the per-property pipeline, created with Property
//   - Validator               – an entity validator with hooks and an optional Observer
//   - RuleSet                 – a group of properties enabled by one predicate
//   - Include / IncludeBase   – reuse of another validator's rules
//   - CollectionValidator     – count, null-item, duplicate and per-item checks
//   - DictionaryValidator     – the same for maps, entries visited in key order
//   - CommonValidator         – a reusable pipeline bound to the calling property
//   - ValueValidator          – a pipeline over one standalone value
//   - MultiValidator          – several independent runs merged into one outcome
//
// Message paths use wire names ("startDate", "lines[1].sku") unless
// Args.UseJSONNames is false, in which case native names are used
// ("StartDate", "Lines[1].SKU"). Process-wide defaults come from Settings,
// loaded from the environment with LoadSettings.
//
// # Usage
//
//	v := validation.New[*Period](validation.WithName("period"))
//	validation.Property(v, "Code", func(p *Period) string { return p.Code }).
//		Mandatory().
//		Add(validation.MaxLength(10))
//	validation.Property(v, "EndDate", func(p *Period) time.Time { return p.EndDate }).
//		CompareProperty(validation.GreaterThanEqual, "StartDate")
//
//	r, err := v.Validate(ctx, period)
//	if err != nil {
//		return err // misconfiguration, cancelled context or a failing checker
//	}
//	if err := r.Err(); err != nil {
//		return err // *ValidationError
//	}
//
// # Error Handling
//
// Invalid data never produces a Go error; it is reported through messages and
// converted with ErrorFrom or Context.Err. Mistakes made while assembling a
// validator panic with a *ConfigError; mistakes only detectable while running
// are returned as errors matching ErrConfiguration.
//
// # Translation
//
// Message texts carry an i18n key and an English template. NewTranslator
// loads the bundled catalogs, and NewTranslatorFormatter or ContextFormatter
// render messages in the requested language.
package validation
