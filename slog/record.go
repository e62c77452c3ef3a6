package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/briefly"
)

// Ensure LoggingRecordService implements briefly.RecordService.
var _ briefly.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging.
type LoggingRecordService struct {
	next   briefly.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next briefly.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, record *briefly.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create record",
			"id", record.ID,
			"variant", string(record.Variant),
			"url", record.URL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, record)
}

// FindRecordByID delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (*briefly.Record, error) {
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter briefly.RecordFilter) (records []*briefly.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find records",
			"limit", filter.Limit,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}
