package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-portal/internal/domain/fixture"
)

// listFixturesRequest checks query formats. Combination rules (from/to pairing,
// last vs next) are enforced by the fixture service.
type listFixturesRequest struct {
	League string `validate:"omitempty,number,max=10"`
	Season string `validate:"omitempty,number,len=4"`
	Team   string `validate:"omitempty,number,max=10"`
	Date   string `validate:"omitempty,datetime=2006-01-02"`
	From   string `validate:"omitempty,datetime=2006-01-02"`
	To     string `validate:"omitempty,datetime=2006-01-02"`
	Status string `validate:"omitempty,oneof=NS LIVE FT PST CANC"`
	Last   string `validate:"omitempty,number,max=2"`
	Next   string `validate:"omitempty,number,max=2"`
}

func (req listFixturesRequest) toFilter() fixture.Filter {
	atoi := func(v string) int {
		n, _ := strconv.Atoi(v)
		return n
	}
	atoi64 := func(v string) int64 {
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return fixture.Filter{
		League: atoi64(req.League),
		Season: atoi(req.Season),
		Team:   atoi64(req.Team),
		Date:   req.Date,
		From:   req.From,
		To:     req.To,
		Status: req.Status,
		Last:   atoi(req.Last),
		Next:   atoi(req.Next),
	}
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	query := r.URL.Query()
	req := listFixturesRequest{
		League: strings.TrimSpace(query.Get("league")),
		Season: strings.TrimSpace(query.Get("season")),
		Team:   strings.TrimSpace(query.Get("team")),
		Date:   strings.TrimSpace(query.Get("date")),
		From:   strings.TrimSpace(query.Get("from")),
		To:     strings.TrimSpace(query.Get("to")),
		Status: fixture.NormalizeStatus(query.Get("status")),
		Last:   strings.TrimSpace(query.Get("last")),
		Next:   strings.TrimSpace(query.Get("next")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := req.toFilter()
	items, err := h.fixtureService.List(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed",
			"league_id", filter.League,
			"season", filter.Season,
			"status", filter.Status,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTO(items))
}

func (h *Handler) ListLiveFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveFixtures")
	defer span.End()

	items, err := h.fixtureService.ListLive(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list live fixtures failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTO(items))
}
