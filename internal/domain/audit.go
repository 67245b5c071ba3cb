package domain

import (
	"context"
	"time"
)

// AuditAction тип действия в журнале аудита.
type AuditAction string

const (
	AuditInsert AuditAction = "INSERT"
	AuditGet    AuditAction = "GET"
	AuditDelete AuditAction = "DELETE"
	AuditUpdate AuditAction = "UPDATE"
	AuditEdit   AuditAction = "EDIT"
)

// Имена сущностей в журнале аудита.
const (
	EntityTeam  = "Team"
	EntityMatch = "Match"
)

// AuditEntry одна запись журнала аудита.
type AuditEntry struct {
	ID          int64
	Action      AuditAction
	EntityName  string
	Details     string
	PerformedBy string
	Timestamp   time.Time
}

// AuditSink принимает записи аудита. Запись выполняется по принципу best-effort:
// ошибка журнала не должна влиять на результат основной операции.
type AuditSink interface {
	Record(ctx context.Context, entry AuditEntry)
}

// AuditActionFor возвращает действие аудита для операции изменения команды.
func AuditActionFor(op UpdateOperation) AuditAction {
	switch op {
	case OperationAccumulate:
		return AuditUpdate
	case OperationReplace:
		return AuditEdit
	default:
		panic("domain: unknown update operation " + op.String())
	}
}
