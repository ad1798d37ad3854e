// internal/domain/valorant/valorant.go
//
// Fixed game vocabularies: the map pool and the two rank ladders. These are
// closed lists; anything outside them is rejected at the edge.
package valorant

// Maps is the current competitive map pool.
var Maps = []string{
	"Ascent", "Bind", "Breeze", "Fracture", "Haven", "Icebox",
	"Lotus", "Pearl", "Split", "Sunset", "Abyss",
}

// PublicRanks is the full ladder shown to public-tier users,
// lowest to highest.
var PublicRanks = []string{
	"Iron 1", "Iron 2", "Iron 3",
	"Bronze 1", "Bronze 2", "Bronze 3",
	"Silver 1", "Silver 2", "Silver 3",
	"Gold 1", "Gold 2", "Gold 3",
	"Platinum 1", "Platinum 2", "Platinum 3",
	"Diamond 1", "Diamond 2", "Diamond 3",
	"Ascendant 1", "Ascendant 2", "Ascendant 3",
	"Immortal 1", "Immortal 2", "Immortal 3",
	"Radiant",
}

// TierRanks is the upper-bracket ladder shown to restricted-tier users.
var TierRanks = []string{
	"Ascendant 1", "Ascendant 2", "Ascendant 3",
	"Immortal 1", "Immortal 2", "Immortal 3",
	"Radiant",
}

// RankOrder maps each rank to its 1-based position on the public ladder.
var RankOrder = func() map[string]int {
	m := make(map[string]int, len(PublicRanks))
	for i, r := range PublicRanks {
		m[r] = i + 1
	}
	return m
}()

// DefaultRank is assigned to new users at registration.
func DefaultRank() string { return PublicRanks[0] }

var mapSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Maps))
	for _, name := range Maps {
		m[name] = struct{}{}
	}
	return m
}()

// IsValidMap reports whether name is in the map pool. Matching is exact;
// map names are proper nouns, not user-normalized text.
func IsValidMap(name string) bool {
	_, ok := mapSet[name]
	return ok
}

// InvalidMaps returns every entry of names that is not in the map pool, in
// input order. Callers report the whole batch rather than the first miss.
func InvalidMaps(names []string) []string {
	var bad []string
	for _, name := range names {
		if !IsValidMap(name) {
			bad = append(bad, name)
		}
	}
	return bad
}
