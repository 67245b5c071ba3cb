package handler

import (
	"net/http"
	"strconv"

	"football-championship/internal/domain"
	"football-championship/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StandingsHandler обрабатывает HTTP-запросы турнирной таблицы
type StandingsHandler struct {
	*BaseHandler
	standingsUseCase domain.StandingsUseCase
}

// NewStandingsHandler создает новый экземпляр StandingsHandler
func NewStandingsHandler(standingsUseCase domain.StandingsUseCase, logger *logrus.Logger, m *metrics.Metrics) *StandingsHandler {
	return &StandingsHandler{
		BaseHandler:      NewBaseHandler(logger, m),
		standingsUseCase: standingsUseCase,
	}
}

// GetRankings обрабатывает получение таблицы группы
func (h *StandingsHandler) GetRankings(c echo.Context) error {
	logEntry := h.logRequest(c, "get_rankings")

	group, err := strconv.Atoi(c.Param("groupNumber"))
	if err != nil {
		logEntry.WithError(err).Warn("Invalid group number")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "group number must be an integer"))
	}

	logEntry = logEntry.WithField("group_number", group)
	logEntry.Info("Getting rankings")

	standings, err := h.standingsUseCase.RankGroup(c.Request().Context(), group)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get rankings")
		return respondError(c, err)
	}

	logEntry.WithField("teams_count", len(standings)).Info("Rankings retrieved")
	return c.JSON(http.StatusOK, toAPITeams(standings))
}

// GetOutcome обрабатывает проверку выхода команды из группы
func (h *StandingsHandler) GetOutcome(c echo.Context) error {
	teamName := c.Param("teamName")
	logEntry := h.logRequest(c, "get_outcome").WithField("team_name", teamName)

	group, err := strconv.Atoi(c.Param("groupNumber"))
	if err != nil {
		logEntry.WithError(err).Warn("Invalid group number")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "group number must be an integer"))
	}

	qualified, err := h.standingsUseCase.Qualifies(c.Request().Context(), teamName, group)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get outcome")
		return respondError(c, err)
	}

	logEntry.WithFields(logrus.Fields{
		"group_number": group,
		"qualified":    qualified,
	}).Info("Outcome retrieved")
	return c.JSON(http.StatusOK, qualified)
}
