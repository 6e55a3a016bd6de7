// Package repositories wraps the document-store access used by the
// admin-request workflow behind small interfaces so the workflow can run
// against test doubles.
package repositories

import "errors"

// ErrNotFound is returned when a looked-up document does not exist.
// Mongo-backed implementations translate mongo.ErrNoDocuments into it.
var ErrNotFound = errors.New("document not found")

// ErrDuplicate is returned when an insert violates a unique index, such as
// a second pending request for the same user.
var ErrDuplicate = errors.New("duplicate document")
