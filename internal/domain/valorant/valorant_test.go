package valorant

import "testing"

func TestVocabularySizes(t *testing.T) {
	if len(Maps) != 11 {
		t.Errorf("Maps: got %d entries, want 11", len(Maps))
	}
	if len(PublicRanks) != 25 {
		t.Errorf("PublicRanks: got %d entries, want 25", len(PublicRanks))
	}
	if len(TierRanks) != 7 {
		t.Errorf("TierRanks: got %d entries, want 7", len(TierRanks))
	}
}

func TestDefaultRank(t *testing.T) {
	if got := DefaultRank(); got != "Iron 1" {
		t.Errorf("DefaultRank() = %q, want %q", got, "Iron 1")
	}
}

func TestRankOrder(t *testing.T) {
	if RankOrder["Iron 1"] != 1 {
		t.Errorf("RankOrder[Iron 1] = %d, want 1", RankOrder["Iron 1"])
	}
	if RankOrder["Radiant"] != 25 {
		t.Errorf("RankOrder[Radiant] = %d, want 25", RankOrder["Radiant"])
	}
	if _, ok := RankOrder["Wood 3"]; ok {
		t.Error("RankOrder should not contain unknown ranks")
	}
}

func TestIsValidMap(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Ascent", true},
		{"Bind", true},
		{"Abyss", true},
		{"ascent", false}, // exact match only
		{"Venice", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidMap(tt.name); got != tt.want {
			t.Errorf("IsValidMap(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestInvalidMaps(t *testing.T) {
	bad := InvalidMaps([]string{"Ascent", "Venice", "Bind", "Atlantis"})
	if len(bad) != 2 || bad[0] != "Venice" || bad[1] != "Atlantis" {
		t.Errorf("InvalidMaps returned %v, want [Venice Atlantis]", bad)
	}

	if bad := InvalidMaps([]string{"Ascent", "Bind"}); bad != nil {
		t.Errorf("InvalidMaps on valid batch returned %v, want nil", bad)
	}

	if bad := InvalidMaps(nil); bad != nil {
		t.Errorf("InvalidMaps(nil) returned %v, want nil", bad)
	}
}
