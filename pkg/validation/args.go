package validation

import "maps"

// Args configures a single validation run.
type Args struct {
	// SelectedPropertyName limits entity validation to the single named property.
	SelectedPropertyName string

	// FullyQualifiedEntityName prefixes every native property path.
	FullyQualifiedEntityName string

	// FullyQualifiedJSONEntityName prefixes every wire property path.
	FullyQualifiedJSONEntityName string

	// UseJSONNames selects wire names for message paths.
	UseJSONNames bool

	// ShallowValidation skips nested entity, collection and dictionary item validation.
	ShallowValidation bool

	// Config carries caller-supplied values readable by rules. Nested runs get a copy.
	Config map[string]any

	depth int
	text  string
}

// NewArgs returns Args populated from the current Settings.
func NewArgs() Args {
	return Args{UseJSONNames: CurrentSettings().UseJSONNames}
}

func argsOrDefault(args []Args) Args {
	if len(args) > 0 {
		return args[0]
	}
	return NewArgs()
}

// child derives the args for a nested run rooted at the given paths. The
// config map is copied so nested runs cannot alter what their ancestors see.
func (a Args) child(fqName, fqJSONName, text string) (Args, error) {
	depth := a.depth + 1
	if depth > CurrentSettings().MaxDepth {
		return Args{}, ErrMaxDepthExceeded
	}
	return Args{
		FullyQualifiedEntityName:     fqName,
		FullyQualifiedJSONEntityName: fqJSONName,
		UseJSONNames:                 a.UseJSONNames,
		ShallowValidation:            a.ShallowValidation,
		Config:                       maps.Clone(a.Config),
		depth:                        depth,
		text:                         text,
	}, nil
}

// element derives the args of a collection item or dictionary entry. The
// segment is appended to the unsubstituted entity path so items of a
// directly validated collection read "[0].name".
func (a Args) element(segment, text string) (Args, error) {
	return a.child(
		JoinPath(a.FullyQualifiedEntityName, segment),
		JoinPath(a.FullyQualifiedJSONEntityName, segment),
		text,
	)
}
