package usecase

import "errors"

// rejection помечает ошибку отдельного элемента пакета. Такая ошибка
// попадает в ProcessingResult.Errors, остальные прерывают пакет.
type rejection struct {
	reason error
}

func (r rejection) Error() string { return r.reason.Error() }

func (r rejection) Unwrap() error { return r.reason }

func reject(reason error) error {
	return rejection{reason: reason}
}

func isRejection(err error) bool {
	var r rejection
	return errors.As(err, &r)
}
