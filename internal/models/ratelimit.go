package models

import "time"

// SubmissionRecord is one rate-limit bookkeeping row. Only a privacy-preserving
// hash of the client address is ever stored.
type SubmissionRecord struct {
	ID          int64     `db:"id" json:"id"`
	IPHash      string    `db:"ip_hash" json:"ip_hash"`
	SubmittedAt time.Time `db:"submitted_at" json:"submitted_at"`
}
