package briefly

import (
	"context"
	"time"
)

// ManualInputURL is stored as the source of pasted text without a URL.
const ManualInputURL = "manual-input"

// Record is a persisted structuring result. Records are created once and
// never updated.
type Record struct {
	ID          string    `json:"id"`
	Variant     Variant   `json:"variant"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	Recipe      *Recipe   `json:"recipe,omitempty"`
	Summary     *Summary  `json:"summary,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`

	// Text is the focused text the record was structured from. It is used
	// to compute ContentHash and is not stored.
	Text string `json:"-"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if err := r.Variant.Validate(); err != nil {
		return err
	}
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	switch r.Variant {
	case VariantRecipe:
		if r.Recipe == nil {
			return Errorf(EINVALID, "recipe record requires a recipe")
		}
	case VariantSummary:
		if r.Summary == nil {
			return Errorf(EINVALID, "summary record requires a summary")
		}
	}
	return nil
}

// RecordService represents a service for managing records.
type RecordService interface {
	// CreateRecord stores a new record, assigning its ID, CreatedAt and
	// ContentHash.
	CreateRecord(ctx context.Context, record *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Variant *Variant `json:"variant"`

	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
