package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-api/internal/domain/team"
)

const (
	defaultPage   = 0
	defaultSize   = 10
	defaultSortBy = string(team.SortByName)
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	query, err := h.parseListTeamsQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.ListTeams(ctx, query.Page, query.Size, query.SortBy)
	if err != nil {
		h.fail(ctx, w, "list teams", err, "page", query.Page, "size", query.Size, "sort_by", query.SortBy)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(ctx, t))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.GetTeam(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get team", err, "team_id", id)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamToDTO(ctx, item))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req teamRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.CreateTeam(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, w, "create team", err, "name", req.Name)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamToDTO(ctx, item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req teamRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.UpdateTeam(ctx, id, req.toInput())
	if err != nil {
		h.fail(ctx, w, "update team", err, "team_id", id)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamToDTO(ctx, item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teamService.DeleteTeam(ctx, id); err != nil {
		h.fail(ctx, w, "delete team", err, "team_id", id)
		return
	}

	writeNoContent(ctx, w)
}

// parseListTeamsQuery applies the defaults page=0, size=10, sortBy=name.
func (h *Handler) parseListTeamsQuery(ctx context.Context, r *http.Request) (listTeamsQuery, error) {
	values := r.URL.Query()
	query := listTeamsQuery{Page: defaultPage, Size: defaultSize, SortBy: defaultSortBy}
	invalid := fieldErrors{}

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			invalid["page"] = fieldMessages["page"]
		}
		query.Page = page
	}
	if raw := strings.TrimSpace(values.Get("size")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			invalid["size"] = fieldMessages["size"]
		}
		query.Size = size
	}
	if raw := strings.TrimSpace(values.Get("sortBy")); raw != "" {
		query.SortBy = raw
	}
	if len(invalid) > 0 {
		return listTeamsQuery{}, invalid
	}

	if err := h.validateRequest(ctx, query); err != nil {
		return listTeamsQuery{}, err
	}
	return query, nil
}
