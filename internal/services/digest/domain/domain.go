// Package domain defines the digest worker types
package domain

import "time"

// Recipient is an opted-in profile joined with its account email
type Recipient struct {
	NetID       string
	Email       string
	DisplayName string
}

// Entry is one event line in a digest
type Entry struct {
	Title     string
	Location  string
	EventDate string
	At        time.Time
}
