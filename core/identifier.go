package core

import "github.com/google/uuid"

// UniqueID returns a globally unique string identifier for a scene
// element. Identifiers are assigned once at construction and referenced
// elsewhere in a document by value; no ordering between successive ids
// is guaranteed or needed. Safe to call from any goroutine.
func UniqueID() string {
	return uuid.New().String()
}
