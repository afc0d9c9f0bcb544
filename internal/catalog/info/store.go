package info

import "context"

// Repository is the persistence contract for the journal info singleton.
type Repository interface {
	// Get returns the single journal info record.
	Get(context context.Context) (*JournalInfo, error)

	// Upsert overwrites the singleton, creating it on first write.
	Upsert(context context.Context, ji *JournalInfo) error
}
