package schema

// Context is the JSON-LD context portion of the ontology model. The
// generator uses it only to recover human-facing aliases for property
// names; generation is correct without one.
type Context struct {
	// Prefixes maps prefix names to namespace IRIs. Keys are unique.
	Prefixes map[string]string `json:"prefixes,omitempty"`

	// BaseIRI is the @base IRI, if declared.
	BaseIRI string `json:"baseIri,omitempty"`

	// VocabIRI is the @vocab IRI, if declared.
	VocabIRI string `json:"vocabIri,omitempty"`

	// TypeMappings maps JSON-LD type aliases to class IRIs.
	TypeMappings map[string]string `json:"typeMappings,omitempty"`

	// PropertyMappings maps JSON-LD term aliases to their definitions.
	PropertyMappings map[string]TermDefinition `json:"propertyMappings,omitempty"`
}

// AliasFor returns the JSON-LD alias mapped to the given predicate IRI,
// or "" when no property mapping targets it. When several aliases map to
// the same IRI the lexically smallest wins, keeping generation
// deterministic.
func (c Context) AliasFor(iri string) string {
	alias := ""
	for term, def := range c.PropertyMappings {
		if def.ID != iri {
			continue
		}
		if alias == "" || term < alias {
			alias = term
		}
	}
	return alias
}

// TermDefinition is an expanded JSON-LD term definition.
type TermDefinition struct {
	// ID is the IRI the term expands to.
	ID string `json:"id"`

	// Type is the term's @type coercion, if declared.
	Type *TermType `json:"type,omitempty"`

	// Container is the term's @container mapping, if declared.
	Container Container `json:"container,omitempty"`
}

// TermTypeKind discriminates the variants of a TermType.
type TermTypeKind string

const (
	// TermTypeID marks an @type of "@id": values are node references.
	TermTypeID TermTypeKind = "id"

	// TermTypeIRI marks a datatype coercion to a specific IRI.
	TermTypeIRI TermTypeKind = "iri"
)

// TermType is the tagged @type variant of a term definition: either the
// @id keyword or a datatype IRI.
type TermType struct {
	Kind TermTypeKind `json:"kind"`

	// IRI is the datatype IRI; set only when Kind is TermTypeIRI.
	IRI string `json:"iri,omitempty"`
}

// ContainerKind discriminates JSON-LD @container mappings.
type ContainerKind string

const (
	ContainerNone     ContainerKind = ""
	ContainerList     ContainerKind = "list"
	ContainerSet      ContainerKind = "set"
	ContainerIndex    ContainerKind = "index"
	ContainerLanguage ContainerKind = "language"
	ContainerUnknown  ContainerKind = "unknown"
)

// Container is the tagged @container variant of a term definition. For
// ContainerUnknown the raw keyword is preserved in Raw.
type Container struct {
	Kind ContainerKind `json:"kind,omitempty"`
	Raw  string        `json:"raw,omitempty"`
}

// ParseContainer maps a JSON-LD @container keyword onto a Container.
// Unrecognized keywords are preserved verbatim under ContainerUnknown.
func ParseContainer(raw string) Container {
	switch raw {
	case "":
		return Container{Kind: ContainerNone}
	case "@list":
		return Container{Kind: ContainerList}
	case "@set":
		return Container{Kind: ContainerSet}
	case "@index":
		return Container{Kind: ContainerIndex}
	case "@language":
		return Container{Kind: ContainerLanguage}
	default:
		return Container{Kind: ContainerUnknown, Raw: raw}
	}
}
