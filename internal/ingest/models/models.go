package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPlan is assigned when an account is created on first sight.
const (
	DefaultPlan        = "free"
	DefaultUploadLimit = 10
)

type Account struct {
	ID                uuid.UUID `db:"id"`
	ExternalID        string    `db:"external_id"`
	Email             string    `db:"email"`
	Plan              string    `db:"plan"`
	UploadsThisPeriod int       `db:"uploads_this_period"`
	UploadLimit       int       `db:"upload_limit"`
	CreatedAt         time.Time `db:"created_at"`
}

// Medium is one ingested video and its derived metadata. A row exists only
// after the transcode succeeded and the commit went through; there is no
// pending state.
type Medium struct {
	ID              uuid.UUID `db:"id"`
	AccountID       uuid.UUID `db:"account_id"`
	ExternalID      string    `db:"external_id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	OriginalBytes   int64     `db:"original_bytes"`
	CompressedBytes int64     `db:"compressed_bytes"`
	DurationSeconds float64   `db:"duration_seconds"`
	CaptionsURL     *string   `db:"captions_url"`
	CreatedAt       time.Time `db:"created_at"`
}

// MediaDescriptor is what the transcode service reports back for a stored
// asset. DurationSeconds is 0 when the service did not detect one.
type MediaDescriptor struct {
	ExternalID      string  `json:"external_id"`
	Bytes           int64   `json:"bytes"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type Transcription struct {
	Transcript   string `json:"transcript"`
	SubtitleText string `json:"subtitle_text"`
}

// IngestResult carries the committed medium plus a warning when the caption
// sub-pipeline degraded. CaptionWarning is empty on a clean run.
type IngestResult struct {
	Medium         *Medium
	CaptionWarning string
}

// Identity is what the identity provider knows about an external subject.
type Identity struct {
	ExternalID string
	Email      string
}
