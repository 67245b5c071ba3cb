package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidTeamName    = errors.New("invalid team name")
	ErrTeamNameTooLong    = errors.New("team name is too long")
	ErrInvalidGroupNumber = errors.New("group number should either be 1 or 2")
	ErrInvalidDate        = errors.New("invalid date format, please use 'dd/MM'")
	ErrSameTeamInMatch    = errors.New("duplicate team name")
	ErrNegativeScore      = errors.New("score must be more than 0")
	ErrNegativeValue      = errors.New("team statistics must not be negative")
	ErrValueTooLarge      = errors.New("value exceeds the allowed maximum")
	ErrUnknownOperation   = errors.New("unknown update operation")

	// Team errors
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamAlreadyExists = errors.New("team name already exists")
	ErrTeamNameTaken     = errors.New("team name already taken")

	// Group errors
	ErrGroupNotFound = errors.New("such group number does not exist")
)

// HTTPError тело ошибки во внешнем API
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки. Порядок важен: побеждает первое совпадение.
var ErrorMapping = []struct {
	Err  error
	HTTP HTTPError
}{
	{ErrInvalidTeamName, HTTPError{Code: "INVALID_TEAM_NAME", Message: "team name must not be empty"}},
	{ErrTeamNameTooLong, HTTPError{Code: "INVALID_TEAM_NAME", Message: "team name is too long"}},
	{ErrInvalidGroupNumber, HTTPError{Code: "INVALID_GROUP", Message: "group number should either be 1 or 2"}},
	{ErrInvalidDate, HTTPError{Code: "INVALID_DATE", Message: "invalid date format"}},
	{ErrNegativeValue, HTTPError{Code: "NEGATIVE_VALUE", Message: "team statistics must not be negative"}},
	{ErrValueTooLarge, HTTPError{Code: "VALUE_TOO_LARGE", Message: "value exceeds the allowed maximum"}},
	{ErrUnknownOperation, HTTPError{Code: "UNKNOWN_OPERATION", Message: "operation must be UPDATE or EDIT"}},
	{ErrTeamNotFound, HTTPError{Code: "NOT_FOUND", Message: "team not found"}},
	{ErrGroupNotFound, HTTPError{Code: "NOT_FOUND", Message: "such group number does not exist"}},
	{ErrTeamAlreadyExists, HTTPError{Code: "TEAM_EXISTS", Message: "team name already exists"}},
	{ErrTeamNameTaken, HTTPError{Code: "TEAM_NAME_TAKEN", Message: "team name already taken"}},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for _, m := range ErrorMapping {
		if errors.Is(err, m.Err) {
			return m.HTTP, true
		}
	}
	return HTTPError{}, false
}
