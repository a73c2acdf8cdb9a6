package mapping

import "sort"

// ClassMapping ties one original fully-qualified class name to its
// obfuscated counterpart and the members declared under its header.
// Instances are built during the parse pass and not mutated afterwards.
type ClassMapping struct {
	// OriginalName is the dot-separated fully-qualified name, possibly
	// containing "$" for inner classes.
	OriginalName string

	// ObfuscatedName is the obfuscated class name, empty if the header
	// carried none.
	ObfuscatedName string

	// Fields holds the field members in input order.
	Fields []FieldMapping

	// Methods holds the method members in input order.
	Methods []MethodMapping
}

// FieldMapping is one field member line. Duplicate named forms are allowed
// here; collisions are resolved later, when constant names are assigned.
type FieldMapping struct {
	ObfuscatedName string
	NamedName      string
}

// MethodMapping is one method member line. Overloads share a NamedName and
// are told apart by Signature, which keeps the full parameter-and-return
// text with any leading line-range prefix stripped.
type MethodMapping struct {
	ObfuscatedName string
	NamedName      string
	Signature      string
}

// Table maps original class names to their mappings.
type Table map[string]*ClassMapping

// SortedNames returns the original class names in lexicographic order.
// Output must always be produced in this order so runs are reproducible.
func (t Table) SortedNames() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Stats summarizes one parse pass.
type Stats struct {
	// Classes is the number of distinct class headers seen.
	Classes int
	// Fields is the total number of field member lines parsed.
	Fields int
	// Methods is the total number of method member lines parsed.
	Methods int
	// Dropped counts lines that matched no production and were discarded.
	Dropped int
}
