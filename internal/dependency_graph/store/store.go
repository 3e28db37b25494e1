// Package store keeps uploaded knit documents. The most recent upload is the
// current document that catalog queries answer from.
package store

import (
	"context"
	"time"
)

type StoredDocument struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Size       int       `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
	Data       []byte    `json:"data"`
}

type DocumentStore interface {
	// Save stores doc and makes it current.
	Save(ctx context.Context, doc *StoredDocument) error
	Current(ctx context.Context) (*StoredDocument, error)
	Get(ctx context.Context, id string) (*StoredDocument, error)
	Ping(ctx context.Context) error
	Name() string
}
