package handler

import (
	"errors"
	"net/http"
	"time"

	"football-championship/internal/domain"

	"github.com/labstack/echo/v4"
)

const isoDate = "2006-01-02"

// Модели внешнего API. Доменные структуры наружу не отдаются.

type teamRequest struct {
	Name             string `json:"name"`
	RegistrationDate string `json:"registrationDate"`
	GroupNumber      int    `json:"groupNumber"`
}

type updateTeamRequest struct {
	TeamName            string  `json:"teamName"`
	NewName             *string `json:"newName"`
	NewRegistrationDate *string `json:"newRegistrationDate"`
	GroupNumber         *int    `json:"groupNumber"`
	TotalGoals          *int    `json:"totalGoals"`
	MatchPoints         *int    `json:"matchPoints"`
	AlternatePoints     *int    `json:"alternatePoints"`
	MatchesPlayed       *int    `json:"matchesPlayed"`
}

type matchRequest struct {
	TeamAName  string `json:"teamAName"`
	TeamBName  string `json:"teamBName"`
	TeamAGoals int    `json:"teamAGoals"`
	TeamBGoals int    `json:"teamBGoals"`
}

type teamResponse struct {
	Name             string `json:"name"`
	RegistrationDate string `json:"registrationDate"`
	GroupNumber      int    `json:"groupNumber"`
	TotalGoals       int    `json:"totalGoals"`
	MatchPoints      int    `json:"matchPoints"`
	AlternatePoints  int    `json:"alternatePoints"`
	MatchesPlayed    int    `json:"matchesPlayed"`
}

type matchResponse struct {
	ID         int64     `json:"id"`
	TeamAName  string    `json:"teamAName"`
	TeamBName  string    `json:"teamBName"`
	TeamAGoals int       `json:"teamAGoals"`
	TeamBGoals int       `json:"teamBGoals"`
	CreatedAt  time.Time `json:"createdAt"`
}

type processingResultResponse[T any] struct {
	BatchID   string   `json:"batchId"`
	ValidData []T      `json:"validData"`
	Errors    []string `json:"errors"`
}

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPITeam(team *domain.Team) teamResponse {
	return teamResponse{
		Name:             team.Name,
		RegistrationDate: team.RegistrationDate.Format(isoDate),
		GroupNumber:      team.GroupNumber,
		TotalGoals:       team.TotalGoals,
		MatchPoints:      team.MatchPoints,
		AlternatePoints:  team.AlternatePoints,
		MatchesPlayed:    team.MatchesPlayed,
	}
}

func toAPITeams(teams []*domain.Team) []teamResponse {
	result := make([]teamResponse, len(teams))
	for i, t := range teams {
		result[i] = toAPITeam(t)
	}
	return result
}

func toAPIMatches(matches []*domain.Match) []matchResponse {
	result := make([]matchResponse, len(matches))
	for i, m := range matches {
		result[i] = matchResponse{
			ID:         m.ID,
			TeamAName:  m.TeamA,
			TeamBName:  m.TeamB,
			TeamAGoals: m.GoalsA,
			TeamBGoals: m.GoalsB,
			CreatedAt:  m.CreatedAt,
		}
	}
	return result
}

func toAPIResult[T, R any](res *domain.ProcessingResult[T], convert func([]T) []R) processingResultResponse[R] {
	return processingResultResponse[R]{
		BatchID:   res.BatchID,
		ValidData: convert(res.ValidData),
		Errors:    res.Errors,
	}
}

func toRegistrations(req []teamRequest) []domain.TeamRegistration {
	result := make([]domain.TeamRegistration, len(req))
	for i, r := range req {
		result[i] = domain.TeamRegistration{
			Name:             r.Name,
			RegistrationDate: r.RegistrationDate,
			GroupNumber:      r.GroupNumber,
		}
	}
	return result
}

func toProposals(req []matchRequest) []domain.MatchProposal {
	result := make([]domain.MatchProposal, len(req))
	for i, r := range req {
		result[i] = domain.MatchProposal{
			TeamA:  r.TeamAName,
			TeamB:  r.TeamBName,
			GoalsA: r.TeamAGoals,
			GoalsB: r.TeamBGoals,
		}
	}
	return result
}

func toTeamUpdate(req updateTeamRequest) (domain.TeamUpdate, error) {
	update := domain.TeamUpdate{
		TeamName:    req.TeamName,
		NewName:     req.NewName,
		GroupNumber: req.GroupNumber,
		Delta: domain.TeamDelta{
			TotalGoals:      req.TotalGoals,
			MatchPoints:     req.MatchPoints,
			AlternatePoints: req.AlternatePoints,
			MatchesPlayed:   req.MatchesPlayed,
		},
	}

	if req.NewRegistrationDate != nil {
		date, err := time.ParseInLocation(isoDate, *req.NewRegistrationDate, time.UTC)
		if err != nil {
			return domain.TeamUpdate{}, domain.ErrInvalidDate
		}
		update.NewRegistrationDate = &date
	}

	return update, nil
}

func toErrorResponse(code, message string) domain.ErrorResponse {
	return domain.ErrorResponse{
		Error: domain.HTTPError{
			Code:    code,
			Message: message,
		},
	}
}

// respondError отдает клиенту domain ошибку с подходящим статусом.
func respondError(c echo.Context, err error) error {
	if httpErr, exists := domain.ToHTTPError(err); exists {
		return c.JSON(getHTTPStatusCode(err), domain.ErrorResponse{Error: httpErr})
	}
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
}

func getHTTPStatusCode(err error) int {
	switch {
	// Conflict errors (409)
	case errors.Is(err, domain.ErrTeamAlreadyExists), errors.Is(err, domain.ErrTeamNameTaken):
		return http.StatusConflict

	// Not Found errors (404)
	case errors.Is(err, domain.ErrTeamNotFound), errors.Is(err, domain.ErrGroupNotFound):
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrInvalidTeamName), errors.Is(err, domain.ErrTeamNameTooLong),
		errors.Is(err, domain.ErrInvalidGroupNumber), errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrNegativeValue), errors.Is(err, domain.ErrValueTooLarge),
		errors.Is(err, domain.ErrUnknownOperation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
