package handler

import (
	"net/http"

	"football-championship/internal/domain"
	"football-championship/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// MatchHandler обрабатывает HTTP-запросы с результатами матчей
type MatchHandler struct {
	*BaseHandler
	matchUseCase domain.MatchUseCase
}

// NewMatchHandler создает новый экземпляр MatchHandler
func NewMatchHandler(matchUseCase domain.MatchUseCase, logger *logrus.Logger, m *metrics.Metrics) *MatchHandler {
	return &MatchHandler{
		BaseHandler:  NewBaseHandler(logger, m),
		matchUseCase: matchUseCase,
	}
}

// AddMatches обрабатывает пакет результатов матчей
func (h *MatchHandler) AddMatches(c echo.Context) error {
	logEntry := h.logRequest(c, "add_matches")

	var req []matchRequest
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithField("matches_count", len(req))
	logEntry.Info("Processing match results")

	result, err := h.matchUseCase.SubmitMatches(c.Request().Context(), toProposals(req))
	if err != nil {
		logEntry.WithError(err).Error("Failed to process match results")
		return respondError(c, err)
	}

	h.metrics.RecordBatch(domain.EntityMatch, len(result.ValidData), len(result.Errors))
	logEntry.WithFields(logrus.Fields{
		"batch_id": result.BatchID,
		"accepted": len(result.ValidData),
		"rejected": len(result.Errors),
	}).Info("Match results processed")

	return c.JSON(http.StatusOK, toAPIResult(result, toAPIMatches))
}

// GetTeamMatches обрабатывает получение истории матчей команды
func (h *MatchHandler) GetTeamMatches(c echo.Context) error {
	teamName := c.Param("teamName")
	logEntry := h.logRequest(c, "get_team_matches").WithField("team_name", teamName)
	logEntry.Info("Getting team matches")

	matches, err := h.matchUseCase.ListTeamMatches(c.Request().Context(), teamName)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get team matches")
		return respondError(c, err)
	}

	logEntry.WithField("matches_count", len(matches)).Info("Team matches retrieved")
	return c.JSON(http.StatusOK, toAPIMatches(matches))
}
