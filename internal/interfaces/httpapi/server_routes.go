package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

// registerAPIRoutes gates the whole /api tree, unknown paths included,
// behind basic auth.
func registerAPIRoutes(mux *http.ServeMux, handler *Handler, credentials BasicCredentials) {
	api := http.NewServeMux()
	registerPlayerRoutes(api, handler)
	registerTeamRoutes(api, handler)

	protected := RequireBasicAuth(credentials, api)
	mux.Handle("/api", protected)
	mux.Handle("/api/", protected)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/players/{id}", handler.GetPlayer)
	mux.HandleFunc("POST /api/players", handler.CreatePlayer)
	mux.HandleFunc("PUT /api/players/{id}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /api/players/{id}", handler.DeletePlayer)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/teams/{id}", handler.GetTeam)
	mux.HandleFunc("POST /api/teams", handler.CreateTeam)
	mux.HandleFunc("PUT /api/teams/{id}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /api/teams/{id}", handler.DeleteTeam)
}
