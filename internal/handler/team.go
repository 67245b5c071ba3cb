package handler

import (
	"net/http"

	"football-championship/internal/domain"
	"football-championship/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TeamHandler обрабатывает HTTP-запросы для управления командами
type TeamHandler struct {
	*BaseHandler
	teamUseCase domain.TeamUseCase
}

// NewTeamHandler создает новый экземпляр TeamHandler
func NewTeamHandler(teamUseCase domain.TeamUseCase, logger *logrus.Logger, m *metrics.Metrics) *TeamHandler {
	return &TeamHandler{
		BaseHandler: NewBaseHandler(logger, m),
		teamUseCase: teamUseCase,
	}
}

// AddTeams обрабатывает пакетную регистрацию команд
func (h *TeamHandler) AddTeams(c echo.Context) error {
	logEntry := h.logRequest(c, "add_teams")

	var req []teamRequest
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithField("teams_count", len(req))
	logEntry.Info("Registering teams")

	result, err := h.teamUseCase.RegisterTeams(c.Request().Context(), toRegistrations(req))
	if err != nil {
		logEntry.WithError(err).Error("Failed to register teams")
		return respondError(c, err)
	}

	h.metrics.RecordBatch(domain.EntityTeam, len(result.ValidData), len(result.Errors))
	logEntry.WithFields(logrus.Fields{
		"batch_id": result.BatchID,
		"accepted": len(result.ValidData),
		"rejected": len(result.Errors),
	}).Info("Teams registered")

	return c.JSON(http.StatusCreated, toAPIResult(result, toAPITeams))
}

// GetTeam обрабатывает получение команды по названию
func (h *TeamHandler) GetTeam(c echo.Context) error {
	teamName := c.Param("teamName")
	logEntry := h.logRequest(c, "get_team").WithField("team_name", teamName)
	logEntry.Info("Getting team")

	team, err := h.teamUseCase.GetTeam(c.Request().Context(), teamName)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get team")
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toAPITeam(team))
}

// DeleteTeam обрабатывает удаление команды
func (h *TeamHandler) DeleteTeam(c echo.Context) error {
	teamName := c.Param("teamName")
	logEntry := h.logRequest(c, "delete_team").WithField("team_name", teamName)
	logEntry.Info("Deleting team")

	if err := h.teamUseCase.DeleteTeam(c.Request().Context(), teamName); err != nil {
		logEntry.WithError(err).Warn("Failed to delete team")
		return respondError(c, err)
	}

	logEntry.Info("Team deleted")
	return c.NoContent(http.StatusOK)
}

// UpdateTeam обрабатывает изменение команды операцией UPDATE или EDIT
func (h *TeamHandler) UpdateTeam(c echo.Context) error {
	logEntry := h.logRequest(c, "update_team").WithField("update_operation", c.Param("operation"))

	op, err := domain.ParseOperation(c.Param("operation"))
	if err != nil {
		logEntry.WithError(err).Warn("Unknown update operation")
		return respondError(c, err)
	}

	var req updateTeamRequest
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithField("team_name", req.TeamName)
	logEntry.Info("Updating team")

	update, err := toTeamUpdate(req)
	if err != nil {
		logEntry.WithError(err).Warn("Invalid registration date")
		return respondError(c, err)
	}

	team, err := h.teamUseCase.UpdateTeam(c.Request().Context(), op, update)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to update team")
		return respondError(c, err)
	}

	logEntry.Info("Team updated")
	return c.JSON(http.StatusOK, toAPITeam(team))
}
