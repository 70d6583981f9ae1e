package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListContinents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListContinents")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, continentsToDTO(h.leagueService.Continents()))
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	season, err := parseOptionalInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	country := strings.TrimSpace(r.URL.Query().Get("country"))

	items, err := h.leagueService.ListLeagues(ctx, country, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "country", country, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaguesToDTO(items))
}

func (h *Handler) ListLeagueSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueSeasons")
	defer span.End()

	leagueID, err := parsePathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasons, err := h.leagueService.ListSeasons(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league seasons failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if seasons == nil {
		seasons = []int{}
	}

	writeSuccess(ctx, w, http.StatusOK, seasons)
}

func (h *Handler) ListLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueStandings")
	defer span.End()

	leagueID, err := parsePathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := parseOptionalInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.standingService.ListByLeague(ctx, leagueID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list league standings failed", "league_id", leagueID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(items))
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague")
	defer span.End()

	leagueID, err := parsePathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := parseOptionalInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.teamService.ListByLeague(ctx, leagueID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams by league failed", "league_id", leagueID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(items))
}

// GetLeagueOverview answers 200 even when upstream calls fail; the failure is
// reported in the payload's error field.
func (h *Handler) GetLeagueOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueOverview")
	defer span.End()

	leagueID, err := parsePathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.overviewService.Get(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league overview failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(overview))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := parsePathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.GetByID(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}
