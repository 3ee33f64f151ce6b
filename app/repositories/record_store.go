package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrIO is returned when a document is missing or cannot be read or written.
	ErrIO = errors.New("record store: io error")
	// ErrParse is returned when a document is not valid JSON.
	ErrParse = errors.New("record store: parse error")
)

// RecordStore persists named documents of the form { "<name>": [ ...records ] }.
// Every call reads or writes the whole document.
type RecordStore interface {
	Read(ctx context.Context, name string) ([]json.RawMessage, error)
	Write(ctx context.Context, name string, records []json.RawMessage) error
	// Update runs read, fn and write while holding the document's lock.
	Update(ctx context.Context, name string, fn func([]json.RawMessage) ([]json.RawMessage, error)) error
}

const (
	UsersDocument         = "users"
	RoomsDocument         = "rooms"
	GuestsDocument        = "guests"
	CleaningTasksDocument = "cleaningTasks"
)

// decodeDocument extracts the named array out of a raw document body.
// A document without the array reads as empty.
func decodeDocument(name string, body []byte) ([]json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, name, err)
	}
	raw, ok := doc[name]
	if !ok || string(raw) == "null" {
		return []json.RawMessage{}, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, name, err)
	}
	return records, nil
}

func encodeDocument(name string, records []json.RawMessage) ([]byte, error) {
	if records == nil {
		records = []json.RawMessage{}
	}
	body, err := json.MarshalIndent(map[string][]json.RawMessage{name: records}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return body, nil
}

// table is a typed view over one document of a RecordStore.
type table[T any] struct {
	store RecordStore
	name  string
}

func newTable[T any](store RecordStore, name string) table[T] {
	return table[T]{store: store, name: name}
}

func (t table[T]) all(ctx context.Context) ([]T, error) {
	raw, err := t.store.Read(ctx, t.name)
	if err != nil {
		return nil, err
	}
	return decodeRecords[T](t.name, raw)
}

func (t table[T]) save(ctx context.Context, items []T) error {
	raw, err := encodeRecords(t.name, items)
	if err != nil {
		return err
	}
	return t.store.Write(ctx, t.name, raw)
}

// add appends item without decoding the records already stored.
func (t table[T]) add(ctx context.Context, item T) error {
	b, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.name, err)
	}
	return t.store.Update(ctx, t.name, func(raw []json.RawMessage) ([]json.RawMessage, error) {
		return append(raw, b), nil
	})
}

// patch sets fields on the first record whose key field equals id and reports whether one matched.
// Every other record, and every field not named in fields, is written back unchanged.
func (t table[T]) patch(ctx context.Context, key, id string, fields map[string]any) (bool, error) {
	found := false
	err := t.store.Update(ctx, t.name, func(raw []json.RawMessage) ([]json.RawMessage, error) {
		for i, r := range raw {
			var record map[string]json.RawMessage
			if err := json.Unmarshal(r, &record); err != nil || record == nil {
				continue
			}
			var recordID string
			if err := json.Unmarshal(record[key], &recordID); err != nil || recordID != id {
				continue
			}
			for name, value := range fields {
				b, err := json.Marshal(value)
				if err != nil {
					return nil, fmt.Errorf("encode %s.%s: %w", t.name, name, err)
				}
				record[name] = b
			}
			b, err := json.Marshal(record)
			if err != nil {
				return nil, fmt.Errorf("encode %s[%d]: %w", t.name, i, err)
			}
			raw[i] = b
			found = true
			break
		}
		return raw, nil
	})
	return found, err
}

func decodeRecords[T any](name string, raw []json.RawMessage) ([]T, error) {
	items := make([]T, 0, len(raw))
	for i, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", ErrParse, name, i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func encodeRecords[T any](name string, items []T) ([]json.RawMessage, error) {
	raw := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		raw = append(raw, b)
	}
	return raw, nil
}
