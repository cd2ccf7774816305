// Package models defines the persisted entities of the portfolio backend.
package models

import "time"

// ClientInfo describes the requesting client as reported by HTTP headers.
// Values are stored verbatim alongside each row for later inspection.
type ClientInfo struct {
	IPAddress string
	UserAgent string
	Referrer  string
}

// ContactMessage is one contact-form submission. Rows are append-only.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}

// ChatTurn is one user message plus the selected canned reply, keyed by the
// opaque session token the client carries between turns.
type ChatTurn struct {
	ID          int64
	SessionID   string
	UserMessage string
	BotResponse string
	IPAddress   string
	UserAgent   string
	CreatedAt   time.Time
}

// AnalyticsEvent is a tracked client action with an opaque payload.
type AnalyticsEvent struct {
	ID        int64
	EventName string
	Payload   map[string]any
	IPAddress string
	UserAgent string
	Referrer  string
	CreatedAt time.Time
}

// ResumeDownload records one resume download request.
type ResumeDownload struct {
	ID        int64
	IPAddress string
	UserAgent string
	Referrer  string
	CreatedAt time.Time
}

// Certificate is an uploaded certificate scoped to the owner token derived
// from the uploader's headers. FileData is omitted by list queries.
type Certificate struct {
	ID         int64
	Name       string
	Issuer     string
	Date       string
	Credential string
	FileName   string
	FileType   string
	FileData   []byte
	OwnerToken string
	CreatedAt  time.Time
}

// CertificateFile is the blob subset fetched when serving a stored file.
type CertificateFile struct {
	FileName string
	FileType string
	FileData []byte
}
