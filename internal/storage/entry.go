package storage

import (
	"errors"
	"time"

	"github.com/goccy/go-json"
)

// Entry is the on-disk envelope around a stored value.
type Entry struct {
	// Key is the unsanitized key the value was stored under.
	Key string `json:"key"`

	// Data is the stored JSON document.
	Data json.RawMessage `json:"data"`

	// UpdatedAt is when the value was last written.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEntry wraps data for key, stamped with the current time.
func NewEntry(key string, data []byte) *Entry {
	return &Entry{
		Key:       key,
		Data:      json.RawMessage(data),
		UpdatedAt: time.Now().UTC(),
	}
}

// MarshalJSON formats UpdatedAt as RFC3339 for readability.
func (e *Entry) MarshalJSON() ([]byte, error) {
	type Alias Entry
	return json.Marshal(&struct {
		*Alias

		UpdatedAt string `json:"updated_at"`
	}{
		Alias:     (*Alias)(e),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	})
}

// UnmarshalJSON parses RFC3339 timestamps written by MarshalJSON.
func (e *Entry) UnmarshalJSON(data []byte) error {
	if e == nil {
		return errors.New("cannot unmarshal into nil Entry")
	}
	type Alias Entry
	aux := &struct {
		*Alias

		UpdatedAt string `json:"updated_at"`
	}{
		Alias: (*Alias)(e),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	t, err := time.Parse(time.RFC3339, aux.UpdatedAt)
	if err != nil {
		return err
	}
	e.UpdatedAt = t
	return nil
}
