package handler

import (
	"net/http"

	"football-championship/internal/domain"
	"football-championship/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*TeamHandler
	*MatchHandler
	*StandingsHandler
	metrics *metrics.Metrics
}

func NewAPIHandler(
	teamUseCase domain.TeamUseCase,
	matchUseCase domain.MatchUseCase,
	standingsUseCase domain.StandingsUseCase,
	logger *logrus.Logger,
	m *metrics.Metrics,
) *APIHandler {

	return &APIHandler{
		TeamHandler:      NewTeamHandler(teamUseCase, logger, m),
		MatchHandler:     NewMatchHandler(matchUseCase, logger, m),
		StandingsHandler: NewStandingsHandler(standingsUseCase, logger, m),
		metrics:          m,
	}
}

// RegisterHandlers регистрирует маршруты API
func RegisterHandlers(e *echo.Echo, h *APIHandler) {
	team := e.Group("/api/team")
	team.POST("/addTeams", h.AddTeams)
	team.GET("/getTeam/:teamName", h.GetTeam)
	team.DELETE("/deleteTeam/:teamName", h.DeleteTeam)
	team.PUT("/updateTeam/:operation", h.UpdateTeam)
	team.GET("/rankings/:groupNumber", h.GetRankings)
	team.GET("/rankings/getOutcome/:teamName/:groupNumber", h.GetOutcome)

	match := e.Group("/api/match")
	match.POST("/addMatches", h.AddMatches)
	match.GET("/team/:teamName", h.GetTeamMatches)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
}
