package model

// Package model defines the domain data retained by the dock: file entries and
// the bounded registry they live in. The registry is owned by the UI goroutine
// and is mutated only by drop ingestion.
