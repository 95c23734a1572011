package httpapi

import (
	"net/http"

	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/domain/team"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.rosterService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	h.savePlayer(w, r, 0, http.StatusCreated)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.savePlayer(w, r, playerID, http.StatusOK)
}

func (h *Handler) savePlayer(w http.ResponseWriter, r *http.Request, playerID int64, status int) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SavePlayer")
	defer span.End()

	var req playerRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	p, verrs := req.toDomain(playerID)
	if err := invalidRequest(verrs); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.rosterService.SavePlayer(ctx, p)
	if err != nil {
		h.logger.WarnContext(ctx, "save player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, status, playerToDTO(saved))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.rosterService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListClubPlayers shows a club admin the players naming their club.
func (h *Handler) ListClubPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubPlayers")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	players, err := h.rosterService.ListClubPlayers(ctx, principal)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) SetPlayerClubStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPlayerClubStatus")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req clubStatusRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.rosterService.SetClubStatus(ctx, principal, playerID, player.ClubStatus(req.Status))
	if err != nil {
		h.logger.WarnContext(ctx, "set club status failed", "user_id", principal.UserID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	var filter team.Filter
	var err error
	if filter.SeasonID, err = queryID(r, "season_id"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.DivisionID, err = queryID(r, "division_id"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.ClubID, err = queryID(r, "club_id"); err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.rosterService.ListTeams(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	h.saveTeam(w, r, 0, http.StatusCreated)
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.saveTeam(w, r, teamID, http.StatusOK)
}

func (h *Handler) saveTeam(w http.ResponseWriter, r *http.Request, teamID int64, status int) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveTeam")
	defer span.End()

	var req teamRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	t, verrs := req.toDomain(teamID)
	if err := invalidRequest(verrs); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.rosterService.SaveTeam(ctx, t)
	if err != nil {
		h.logger.WarnContext(ctx, "save team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, status, teamToDTO(saved))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.rosterService.DeleteTeam(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ApproveTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApproveTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	t, err := h.rosterService.ApproveTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	entries, err := h.rosterService.ListRoster(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]rosterEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, rosterEntryDTO{Member: memberToDTO(e.Member), Player: playerToDTO(e.Player)})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AddTeamPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddTeamPlayer")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req memberRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.rosterService.SaveMember(ctx, team.Member{TeamID: teamID, PlayerID: req.PlayerID, PaidFees: req.PaidFees})
	if err != nil {
		h.logger.WarnContext(ctx, "add team player failed", "team_id", teamID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, memberToDTO(m))
}

func (h *Handler) UpdateTeamPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeamPlayer")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	memberID, err := pathID(r, "memberID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req memberRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.rosterService.SaveMember(ctx, team.Member{ID: memberID, TeamID: teamID, PlayerID: req.PlayerID, PaidFees: req.PaidFees})
	if err != nil {
		h.logger.WarnContext(ctx, "update team player failed", "member_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, memberToDTO(m))
}

func (h *Handler) DeleteTeamPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeamPlayer")
	defer span.End()

	memberID, err := pathID(r, "memberID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.rosterService.DeleteMember(ctx, memberID); err != nil {
		h.logger.WarnContext(ctx, "delete team player failed", "member_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
