package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /openapi.json", handler.OpenAPIJSON)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/clubs", handler.ListClubs)
	mux.HandleFunc("GET /v1/clubs/map", handler.ListMapPins)
	mux.HandleFunc("GET /v1/clubs/{clubID}/reviews", handler.ListClubReviews)
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/fixtures/filter", handler.FilterFixtures)
	mux.HandleFunc("GET /v1/results", handler.ListResults)
	mux.HandleFunc("GET /v1/results/{fixtureID}/breakdown", handler.GetResultBreakdown)
	mux.HandleFunc("GET /v1/tables", handler.ListTables)
	mux.HandleFunc("GET /v1/teams/{teamID}/summary", handler.GetTeamSummary)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/clubs/{clubID}/reviews", RequireAuth(verifier, http.HandlerFunc(handler.CreateClubReview)))
}

// Club admin routes authenticate only; the club binding is checked by the
// services so a missing binding reads as 403 rather than 401.
func registerClubAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/club-admin/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.ClubAdminDashboard)))
	mux.Handle("PUT /v1/club-admin/info", RequireAuth(verifier, http.HandlerFunc(handler.UpdateClubInfo)))
	mux.Handle("DELETE /v1/club-admin/info", RequireAuth(verifier, http.HandlerFunc(handler.DeleteClubInfo)))
	mux.Handle("POST /v1/club-admin/venues", RequireAuth(verifier, http.HandlerFunc(handler.CreateVenue)))
	mux.Handle("POST /v1/club-admin/venues/assign", RequireAuth(verifier, http.HandlerFunc(handler.AssignVenue)))
	mux.Handle("DELETE /v1/club-admin/venues/{venueID}/assignment", RequireAuth(verifier, http.HandlerFunc(handler.UnassignVenue)))
	mux.Handle("PUT /v1/club-admin/venues/{venueID}/info", RequireAuth(verifier, http.HandlerFunc(handler.UpdateVenueInfo)))
	mux.Handle("DELETE /v1/club-admin/venues/{venueID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteVenue)))
	mux.Handle("GET /v1/club-admin/players", RequireAuth(verifier, http.HandlerFunc(handler.ListClubPlayers)))
	mux.Handle("PUT /v1/club-admin/players/{playerID}/club-status", RequireAuth(verifier, http.HandlerFunc(handler.SetPlayerClubStatus)))
}

func registerLeagueAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireLeagueAdmin(verifier, fn))
	}

	admin("GET /v1/admin/divisions", handler.ListDivisions)
	admin("POST /v1/admin/divisions", handler.CreateDivision)
	admin("PUT /v1/admin/divisions/{divisionID}", handler.UpdateDivision)
	admin("DELETE /v1/admin/divisions/{divisionID}", handler.DeleteDivision)

	admin("GET /v1/admin/seasons", handler.AdminListSeasons)
	admin("POST /v1/admin/seasons", handler.CreateSeason)
	admin("PUT /v1/admin/seasons/{seasonID}", handler.UpdateSeason)
	admin("POST /v1/admin/seasons/{seasonID}/current", handler.SetCurrentSeason)
	admin("GET /v1/admin/seasons/{seasonID}/weeks", handler.ListWeeks)
	admin("POST /v1/admin/seasons/{seasonID}/weeks", handler.CreateWeek)

	admin("GET /v1/admin/players", handler.ListPlayers)
	admin("POST /v1/admin/players", handler.CreatePlayer)
	admin("PUT /v1/admin/players/{playerID}", handler.UpdatePlayer)
	admin("DELETE /v1/admin/players/{playerID}", handler.DeletePlayer)

	admin("GET /v1/admin/teams", handler.ListTeams)
	admin("POST /v1/admin/teams", handler.CreateTeam)
	admin("PUT /v1/admin/teams/{teamID}", handler.UpdateTeam)
	admin("DELETE /v1/admin/teams/{teamID}", handler.DeleteTeam)
	admin("POST /v1/admin/teams/{teamID}/approve", handler.ApproveTeam)
	admin("GET /v1/admin/teams/{teamID}/players", handler.ListTeamPlayers)
	admin("POST /v1/admin/teams/{teamID}/players", handler.AddTeamPlayer)
	admin("PUT /v1/admin/teams/{teamID}/players/{memberID}", handler.UpdateTeamPlayer)
	admin("DELETE /v1/admin/teams/{teamID}/players/{memberID}", handler.DeleteTeamPlayer)

	admin("GET /v1/admin/fixtures/check", handler.CheckFixtures)
	admin("POST /v1/admin/fixtures", handler.CreateFixture)
	admin("GET /v1/admin/fixtures/{fixtureID}", handler.GetFixture)
	admin("PUT /v1/admin/fixtures/{fixtureID}", handler.UpdateFixture)
	admin("DELETE /v1/admin/fixtures/{fixtureID}", handler.DeleteFixture)

	admin("POST /v1/admin/results", handler.CreateResult)
	admin("PUT /v1/admin/results/{resultID}", handler.UpdateResult)
	admin("DELETE /v1/admin/results/{resultID}", handler.DeleteResult)
	admin("POST /v1/admin/results/{resultID}/singles", handler.RecordSingles)
	admin("DELETE /v1/admin/singles/{matchID}", handler.DeleteSingles)
	admin("PUT /v1/admin/results/{resultID}/doubles", handler.RecordDoubles)

	admin("GET /v1/admin/approvals", handler.ListPendingApprovals)
	admin("POST /v1/admin/approvals/club-info/{clubID}", handler.ApproveClubInfo)
	admin("POST /v1/admin/approvals/venue-info/{venueID}", handler.ApproveVenueInfo)
	admin("POST /v1/admin/approvals/reviews/{reviewID}", handler.ApproveReview)
}
