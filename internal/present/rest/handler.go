package rest

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lingoclip/lingoclip/internal/domain"
	"github.com/lingoclip/lingoclip/internal/present/rest/presenter"
	"github.com/lingoclip/lingoclip/internal/usecase"
)

type Handler struct {
	playlist *usecase.PlaylistUsecase
	subtitle *usecase.SubtitleUsecase
}

func NewHandler(
	playlist *usecase.PlaylistUsecase,
	subtitle *usecase.SubtitleUsecase,
) *Handler {
	return &Handler{
		playlist: playlist,
		subtitle: subtitle,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.handleHealth)
	e.GET("/m3u8/:term", h.handlePlaylist)
	e.GET("/api/v1/subtitles/:id", h.handleSubtitle)
	e.GET("/api/v1/search", h.handleSearch)
	e.GET("/api/v1/terms", h.handleTopTerms)
}

func (h *Handler) handleHealth(c echo.Context) error {
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// handlePlaylist serves GET /m3u8/:term?repeat=&padding=. The term may
// carry a ".m3u8" suffix so plain video players can use the URL as-is.
func (h *Handler) handlePlaylist(c echo.Context) error {
	ctx := c.Request().Context()

	term, err := url.QueryUnescape(c.Param("term"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid term")
	}
	term = strings.TrimSuffix(term, ".m3u8")
	if term == "" {
		return presenter.BadRequestMessage(c, "empty term")
	}

	repeat := 1
	if raw := c.QueryParam("repeat"); raw != "" {
		repeat, err = strconv.Atoi(raw)
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid repeat parameter")
		}
	}
	padding := 0
	if raw := c.QueryParam("padding"); raw != "" {
		padding, err = strconv.Atoi(raw)
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid padding parameter")
		}
	}

	playlist, err := h.playlist.Build(ctx, term, repeat, padding)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, err.Error())
		}
		return presenter.InternalError(c, err)
	}
	return presenter.Playlist(c, playlist)
}

func (h *Handler) handleSubtitle(c echo.Context) error {
	ctx := c.Request().Context()

	sub, err := h.subtitle.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, err.Error())
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, sub)
}

func (h *Handler) handleSearch(c echo.Context) error {
	ctx := c.Request().Context()

	query := c.QueryParam("q")
	if query == "" {
		return presenter.BadRequestMessage(c, "missing q parameter")
	}

	page, size := 0, 0
	var err error
	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid page parameter")
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid size parameter")
		}
	}

	items, count, err := h.subtitle.Search(ctx, query, c.QueryParam("srt_file"), page, size)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{
		"items": items,
		"count": count,
	})
}

func (h *Handler) handleTopTerms(c echo.Context) error {
	ctx := c.Request().Context()

	field := c.QueryParam("field")
	if field == "" {
		return presenter.BadRequestMessage(c, "missing field parameter")
	}
	size := 0
	if raw := c.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid size parameter")
		}
		size = parsed
	}

	buckets, err := h.subtitle.TopTerms(ctx, field, size)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, buckets)
}
