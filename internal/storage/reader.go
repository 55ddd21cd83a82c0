package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/qepting91/complaint-harvester/internal/domain"
)

// ReadRecords loads a file written by JSONWriter. An object of the form
// {"items": [...]} is accepted too; an object without items yields no records.
func ReadRecords(path string) ([]domain.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		var wrapped struct {
			Items []domain.Record `json:"items"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return wrapped.Items, nil
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}
