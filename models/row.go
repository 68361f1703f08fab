package models

import "go.mongodb.org/mongo-driver/bson"

// Row is a read-only view over one stored record.
// GetValue returns nil for fields the record does not carry.
type Row interface {
	GetValue(field string) any
}

// Document is a schemaless item row as decoded from any item collection
// (post, link, class, comment, rating).
type Document bson.M

// GetValue implements Row
func (d Document) GetValue(field string) any {
	if d == nil {
		return nil
	}
	return d[field]
}
