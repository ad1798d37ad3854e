package meta_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	metafeature "github.com/dalemusser/scrimhub/internal/app/features/meta"
	"github.com/dalemusser/scrimhub/internal/domain/models"
	"github.com/dalemusser/scrimhub/internal/domain/valorant"
	"github.com/dalemusser/scrimhub/internal/testutil"
)

func TestServeMaps(t *testing.T) {
	h := metafeature.NewHandler()

	rec := httptest.NewRecorder()
	h.ServeMaps(rec, httptest.NewRequest(http.MethodGet, "/maps", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Maps []string `json:"maps"`
	}
	testutil.DecodeBody(t, rec, &resp)
	if len(resp.Maps) != len(valorant.Maps) {
		t.Errorf("expected %d maps, got %d", len(valorant.Maps), len(resp.Maps))
	}
}

func TestServeRanks(t *testing.T) {
	h := metafeature.NewHandler()

	cases := []struct {
		tier string
		want int
	}{
		{"public", len(valorant.PublicRanks)},
		{"tier_1", len(valorant.TierRanks)},
	}
	for _, tc := range cases {
		t.Run(tc.tier, func(t *testing.T) {
			user := models.User{UserID: "u1", Tier: tc.tier}
			req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/ranks", nil), &user)

			rec := httptest.NewRecorder()
			h.ServeRanks(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			var resp struct {
				Ranks []string `json:"ranks"`
			}
			testutil.DecodeBody(t, rec, &resp)
			if len(resp.Ranks) != tc.want {
				t.Errorf("tier %s: expected %d ranks, got %d", tc.tier, tc.want, len(resp.Ranks))
			}
		})
	}
}

func TestServeRanksUnauthenticated(t *testing.T) {
	h := metafeature.NewHandler()

	rec := httptest.NewRecorder()
	h.ServeRanks(rec, httptest.NewRequest(http.MethodGet, "/ranks", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a user, got %d", rec.Code)
	}
}
