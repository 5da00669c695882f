package port

import "gasplit/internal/domain"

type RunStore interface {
	PutRun(rec domain.RunRecord) error

	ListRuns() ([]domain.RunRecord, error)

	Close() error
}
