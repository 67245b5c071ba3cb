package domain

// ProcessingResult содержит итоги пакетной операции: успешно обработанные
// элементы и сообщения об ошибках в порядке поступления.
type ProcessingResult[T any] struct {
	BatchID   string
	ValidData []T
	Errors    []string
}

// NewProcessingResult создает пустой результат с запасом под size элементов.
func NewProcessingResult[T any](batchID string, size int) *ProcessingResult[T] {
	return &ProcessingResult[T]{
		BatchID:   batchID,
		ValidData: make([]T, 0, size),
		Errors:    make([]string, 0),
	}
}

func (r *ProcessingResult[T]) AddValid(v T) {
	r.ValidData = append(r.ValidData, v)
}

func (r *ProcessingResult[T]) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// Total возвращает общее число обработанных элементов.
func (r *ProcessingResult[T]) Total() int {
	return len(r.ValidData) + len(r.Errors)
}
