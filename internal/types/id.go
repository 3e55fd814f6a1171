package types

import "strings"

// Provenance says whether an id belongs to a record the backend already
// knows. It decides create-vs-update once per save; getting it wrong either
// updates a nonexistent row or duplicates an existing one, so every id check
// in the codebase goes through these three predicates and nowhere else.
type Provenance int

const (
	ProvenanceNew Provenance = iota
	ProvenancePersisted
)

const (
	matchTempPrefix    = "M"
	playerTempPrefix   = "P"
	playerServerPrefix = "pl_"
	blogTempPrefix     = "B"
	blogServerPrefix   = "blog_"
)

// MatchProvenance classifies a match id. The browser keys unsaved matches
// with an "M"-prefixed timestamp; everything else came from the backend.
func MatchProvenance(id string) Provenance {
	if id == "" || strings.HasPrefix(id, matchTempPrefix) {
		return ProvenanceNew
	}
	return ProvenancePersisted
}

// PlayerProvenance classifies a player id. Persisted player ids always carry
// the backend's "pl_" prefix; anything else, including the browser's
// "P"-prefixed temp ids, is new.
func PlayerProvenance(id string) Provenance {
	if id == "" || strings.HasPrefix(id, playerTempPrefix) || !strings.HasPrefix(id, playerServerPrefix) {
		return ProvenanceNew
	}
	return ProvenancePersisted
}

// BlogProvenance classifies a blog post id, same convention as players with
// the "blog_" backend prefix and "B" temp prefix.
func BlogProvenance(id string) Provenance {
	if id == "" || strings.HasPrefix(id, blogTempPrefix) || !strings.HasPrefix(id, blogServerPrefix) {
		return ProvenanceNew
	}
	return ProvenancePersisted
}
