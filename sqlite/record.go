package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/briefly"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ briefly.RecordService = (*RecordService)(nil)

// RecordService implements briefly.RecordService using SQLite. The
// structured result is stored as a JSON payload.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

const recordColumns = "id, variant, url, title, content_hash, payload, created_at"

// CreateRecord stores a new record.
func (s *RecordService) CreateRecord(ctx context.Context, record *briefly.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	payload, err := encodePayload(record)
	if err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()
	record.ContentHash = hashContent(record.Text)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.ID, string(record.Variant), record.URL, record.Title, record.ContentHash,
		payload, formatTime(record.CreatedAt))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*briefly.Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ?`, id)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, briefly.Errorf(briefly.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter briefly.RecordFilter) ([]*briefly.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.Variant != nil {
		query.WriteString(" AND variant = ?")
		args = append(args, string(*filter.Variant))
	}

	// rowid breaks ties between records created within the same instant.
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*briefly.Record{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*briefly.Record, error) {
	var record briefly.Record
	var variant, payload, createdAt string

	if err := row.Scan(&record.ID, &variant, &record.URL, &record.Title,
		&record.ContentHash, &payload, &createdAt); err != nil {
		return nil, err
	}
	record.Variant = briefly.Variant(variant)

	var err error
	record.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	if err := decodePayload(&record, payload); err != nil {
		return nil, err
	}
	return &record, nil
}

func encodePayload(record *briefly.Record) (string, error) {
	var v any
	switch record.Variant {
	case briefly.VariantRecipe:
		v = record.Recipe
	case briefly.VariantSummary:
		v = record.Summary
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return string(b), nil
}

func decodePayload(record *briefly.Record, payload string) error {
	var err error
	switch record.Variant {
	case briefly.VariantRecipe:
		record.Recipe = &briefly.Recipe{}
		err = json.Unmarshal([]byte(payload), record.Recipe)
	case briefly.VariantSummary:
		record.Summary = &briefly.Summary{}
		err = json.Unmarshal([]byte(payload), record.Summary)
	default:
		return fmt.Errorf("unknown variant %q in record %s", record.Variant, record.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
