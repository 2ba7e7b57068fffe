package domain

// EntityKind is the graph entity type handed to the sink.
type EntityKind string

// Entity kinds emitted by the enrichment operations.
const (
	// EntityPerson is an officer, beneficial owner or representative.
	EntityPerson EntityKind = "reflets.Dirigeant"

	// EntityCompany is a registered company.
	EntityCompany EntityKind = "reflets.DetailedCompany"

	// EntityLocation is a registered office or establishment address.
	EntityLocation EntityKind = "reflets.HeadquartersLocation"
)

// Matching tells the graph how a property takes part in entity merging.
type Matching string

const (
	// MatchStrict properties must be equal for two entities to merge.
	MatchStrict Matching = "strict"

	// MatchLoose properties never prevent a merge.
	MatchLoose Matching = "loose"
)

// LinkStyle is the line style of a link.
type LinkStyle int

// Link styles.
const (
	LinkSolid LinkStyle = iota
	LinkDashed
	LinkDotted
	LinkDashDot
)

// Property is a named, typed value attached to an entity.
type Property struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name,omitempty"`
	Matching    Matching `json:"matching"`
	Value       string   `json:"value"`
}

// Link describes the edge drawn between the query entity and an emitted entity.
type Link struct {
	Label     string    `json:"label,omitempty"`
	Color     string    `json:"color,omitempty"`
	Thickness int       `json:"thickness,omitempty"`
	Style     LinkStyle `json:"style,omitempty"`

	// Reversed draws the edge from the emitted entity to the query entity.
	Reversed bool `json:"reversed,omitempty"`
}

// Entity is one graph node produced by an enrichment run.
type Entity struct {
	Kind       EntityKind `json:"kind"`
	Value      string     `json:"value"`
	Properties []Property `json:"properties,omitempty"`
	Note       string     `json:"note,omitempty"`
	Link       Link       `json:"link"`
}

// NewEntity creates an entity of the given kind and value.
func NewEntity(kind EntityKind, value string) Entity {
	return Entity{Kind: kind, Value: value}
}

// Set adds or replaces a property. Empty values are ignored.
func (e *Entity) Set(name, displayName string, matching Matching, value string) {
	if value == "" {
		return
	}
	for i := range e.Properties {
		if e.Properties[i].Name == name {
			e.Properties[i] = Property{Name: name, DisplayName: displayName, Matching: matching, Value: value}
			return
		}
	}
	e.Properties = append(e.Properties, Property{Name: name, DisplayName: displayName, Matching: matching, Value: value})
}

// Get returns the value of the named property.
func (e Entity) Get(name string) (string, bool) {
	for _, p := range e.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Key identifies the node this entity merges into.
func (e Entity) Key() string {
	return string(e.Kind) + "|" + e.Value
}
