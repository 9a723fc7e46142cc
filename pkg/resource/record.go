package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Field is a loosely-typed scalar lifted from a backend record.
// Present is true when the key exists in the record, even if its value is null.
type Field struct {
	Value   string
	Present bool
}

// Value returns a present field holding s.
func Value(s string) Field {
	return Field{Value: s, Present: true}
}

// Null returns a present field holding no value.
func Null() Field {
	return Field{Present: true}
}

// Record is one file or folder as returned by a resource listing.
type Record struct {
	ID            Field
	Name          Field
	FileName      Field
	Type          Field
	MimeType      Field
	FileExtension Field

	// Parent fields in resolution order: parentId, parent_id, folderId.
	ParentID      Field
	ParentIDSnake Field
	FolderID      Field

	// Children is non-nil when the record carried a children array.
	Children []Record

	malformed bool
}

// Malformed reports whether the record could not be read as a JSON object
// or carries no usable id.
func (r Record) Malformed() bool {
	return r.malformed || strings.TrimSpace(r.ID.Value) == ""
}

// UnmarshalJSON never fails: input that is not a JSON object becomes a
// malformed record whose id is the literal text.
func (r *Record) UnmarshalJSON(data []byte) error {
	*r = decodeRecord(data)
	return nil
}

// DecodeRecords decodes a JSON array of records. Elements that are not
// objects are kept as malformed records. Only a document that is not an
// array is an error.
func DecodeRecords(data []byte) ([]Record, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("resource listing is not a JSON array: %w", err)
	}

	records := make([]Record, 0, len(elems))
	for _, elem := range elems {
		records = append(records, decodeRecord(elem))
	}
	return records, nil
}

func decodeRecord(data []byte) Record {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		literal := scalar(data)
		return Record{
			ID:        Value(literal),
			Name:      Value(literal),
			malformed: true,
		}
	}

	rec := Record{
		ID:            fieldFrom(raw, "id"),
		Name:          fieldFrom(raw, "name"),
		FileName:      fieldFrom(raw, "fileName"),
		Type:          fieldFrom(raw, "type"),
		MimeType:      fieldFrom(raw, "mimeType"),
		FileExtension: fieldFrom(raw, "fileExtension"),
		ParentID:      fieldFrom(raw, "parentId"),
		ParentIDSnake: fieldFrom(raw, "parent_id"),
		FolderID:      fieldFrom(raw, "folderId"),
	}

	if children, ok := raw["children"]; ok {
		var elems []json.RawMessage
		if err := json.Unmarshal(children, &elems); err == nil && elems != nil {
			rec.Children = make([]Record, 0, len(elems))
			for _, elem := range elems {
				rec.Children = append(rec.Children, decodeRecord(elem))
			}
		}
	}

	return rec
}

func fieldFrom(raw map[string]json.RawMessage, key string) Field {
	v, ok := raw[key]
	if !ok {
		return Field{}
	}
	if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return Null()
	}
	return Value(scalar(v))
}

// scalar renders a raw JSON value as text: strings are unquoted, everything
// else keeps its literal form.
func scalar(v []byte) string {
	v = bytes.TrimSpace(v)
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(v))
}
