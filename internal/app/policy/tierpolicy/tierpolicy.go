// internal/app/policy/tierpolicy/tierpolicy.go
package tierpolicy

import (
	"github.com/dalemusser/scrimhub/internal/domain/valorant"
)

// Tier is an access bracket. Ordinal order: Public < Tier3 < Tier2 < Tier1.
type Tier string

const (
	Public Tier = "public"
	Tier3  Tier = "tier_3"
	Tier2  Tier = "tier_2"
	Tier1  Tier = "tier_1"
)

// Parse maps a stored tier string to a Tier. Unknown or empty strings fall
// back to Public: an unrecognized viewer sees only public content, and an
// unrecognized content tier is visible to everyone. This fallback is a
// deliberate contract, not a convenience.
func Parse(s string) Tier {
	switch Tier(s) {
	case Public, Tier3, Tier2, Tier1:
		return Tier(s)
	default:
		return Public
	}
}

// Ordinal returns the tier's position in the visibility hierarchy.
func (t Tier) Ordinal() int {
	switch t {
	case Tier3:
		return 1
	case Tier2:
		return 2
	case Tier1:
		return 3
	default:
		return 0
	}
}

// CanSeeTier reports whether a viewer at viewerTier may see content posted
// at contentTier. Visibility is monotone in the viewer's ordinal.
func CanSeeTier(viewerTier, contentTier Tier) bool {
	return viewerTier.Ordinal() >= contentTier.Ordinal()
}

// CanCreateTeam reports whether a user at the given tier may create a team.
// Tier 1 and tier 2 rosters are provisioned through a separate process and
// are barred from self-service creation.
func CanCreateTeam(t Tier) bool {
	return t != Tier1 && t != Tier2
}

// RankVocabularyFor returns the rank ladder visible to a viewer: the full
// public ladder for public-tier users, the upper bracket for everyone else.
func RankVocabularyFor(viewerTier Tier) []string {
	if viewerTier == Public {
		return valorant.PublicRanks
	}
	return valorant.TierRanks
}
