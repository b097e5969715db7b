package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/runoshun/locrec/internal/domain"
)

// ShowHistoryInput contains the input for the ShowHistory use case.
type ShowHistoryInput struct {
	Key   string // Storage key of the list
	Limit int    // Maximum revisions; 0 = all
}

// HistoryEntry is one revision with the number of records it held.
type HistoryEntry struct {
	domain.Revision
	Records int // -1 if the value is not a JSON array
}

// ShowHistoryOutput contains the output of the ShowHistory use case.
type ShowHistoryOutput struct {
	Entries []HistoryEntry // Newest first
}

// ShowHistory lists earlier values of a list on stores that keep them.
type ShowHistory struct {
	history domain.HistoryStore
}

// NewShowHistory creates a new ShowHistory use case.
// history may be nil when the configured backend keeps no history.
func NewShowHistory(history domain.HistoryStore) *ShowHistory {
	return &ShowHistory{history: history}
}

// Execute returns the revisions of the list.
func (uc *ShowHistory) Execute(ctx context.Context, in ShowHistoryInput) (*ShowHistoryOutput, error) {
	if uc.history == nil {
		return nil, domain.ErrNoHistory
	}

	revs, err := uc.history.History(ctx, in.Key, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("history %s: %w", in.Key, err)
	}

	entries := make([]HistoryEntry, 0, len(revs))
	for _, rev := range revs {
		value, err := uc.history.Revision(ctx, rev.ID)
		if err != nil {
			return nil, fmt.Errorf("read revision %s: %w", rev.ID, err)
		}
		entries = append(entries, HistoryEntry{Revision: rev, Records: countRecords(value)})
	}
	return &ShowHistoryOutput{Entries: entries}, nil
}

func countRecords(value string) int {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return -1
	}
	return len(items)
}
