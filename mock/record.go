package mock

import (
	"context"

	"github.com/fwojciec/briefly"
)

var _ briefly.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of briefly.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, record *briefly.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*briefly.Record, error)
	FindRecordsFn    func(ctx context.Context, filter briefly.RecordFilter) ([]*briefly.Record, error)
}

func (s *RecordService) CreateRecord(ctx context.Context, record *briefly.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*briefly.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter briefly.RecordFilter) ([]*briefly.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}
