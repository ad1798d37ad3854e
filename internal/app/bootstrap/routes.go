// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authapifeature "github.com/dalemusser/scrimhub/internal/app/features/authapi"
	healthfeature "github.com/dalemusser/scrimhub/internal/app/features/health"
	metafeature "github.com/dalemusser/scrimhub/internal/app/features/meta"
	profilefeature "github.com/dalemusser/scrimhub/internal/app/features/profile"
	scrimsfeature "github.com/dalemusser/scrimhub/internal/app/features/scrims"
	teamsfeature "github.com/dalemusser/scrimhub/internal/app/features/teams"
	tieradminfeature "github.com/dalemusser/scrimhub/internal/app/features/tieradmin"
	scrimstore "github.com/dalemusser/scrimhub/internal/app/store/scrims"
	teamstore "github.com/dalemusser/scrimhub/internal/app/store/teams"
	tierrequeststore "github.com/dalemusser/scrimhub/internal/app/store/tierrequests"
	userstore "github.com/dalemusser/scrimhub/internal/app/store/users"
	"github.com/dalemusser/scrimhub/internal/app/system/auth"
	"github.com/dalemusser/scrimhub/internal/app/system/cors"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. ScrimHub builds the per-collection
// stores, the token verifier, and mounts every API feature under /api:
// open endpoints first (health, auth, maps), then the bearer-token group.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	users := userstore.New(deps.MongoDatabase)
	teams := teamstore.New(deps.MongoDatabase)
	scrims := scrimstore.New(deps.MongoDatabase)
	requests := tierrequeststore.New(deps.MongoDatabase)

	tokens := auth.NewTokenManager(appCfg.TokenSecret, appCfg.TokenTTL)

	// The verifier re-fetches the user on every request so tier changes and
	// admin grants take effect without re-login.
	verifier := auth.NewVerifier(tokens, userstore.NewFetcher(deps.MongoDatabase), logger)

	r := chi.NewRouter()
	r.Use(cors.Middleware(appCfg.CORSOrigins))

	// Open endpoints
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/api/health", healthfeature.Routes(healthHandler))

	authHandler := authapifeature.NewHandler(users, tokens, logger)
	r.Mount("/api/auth", authapifeature.Routes(authHandler))

	metaHandler := metafeature.NewHandler()
	r.Get("/api/maps", metaHandler.ServeMaps)

	// Bearer-token protected endpoints
	r.Group(func(r chi.Router) {
		r.Use(verifier.RequireUser)

		profileHandler := profilefeature.NewHandler(teams, requests, logger)
		r.Mount("/api/user", profilefeature.Routes(profileHandler))

		teamsHandler := teamsfeature.NewHandler(teams, users, logger)
		r.Mount("/api/teams", teamsfeature.Routes(teamsHandler))

		scrimsHandler := scrimsfeature.NewHandler(scrims, teams, logger)
		r.Mount("/api/scrims", scrimsfeature.Routes(scrimsHandler))

		tierAdminHandler := tieradminfeature.NewHandler(requests, logger)
		r.Mount("/api/admin/tier-requests", tieradminfeature.Routes(tierAdminHandler, verifier))

		r.Get("/api/ranks", metaHandler.ServeRanks)
	})

	return r, nil
}
