package httpapi

import (
	"time"

	"github.com/google/uuid"

	"github.com/clipforge/clipforge/internal/ingest/models"
	"github.com/clipforge/clipforge/internal/ingest/service"
)

type AccountResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Plan              string    `json:"plan"`
	UploadsThisPeriod int       `json:"uploads_this_period"`
	UploadLimit       int       `json:"upload_limit"`
}

type MediumResponse struct {
	ID              uuid.UUID `json:"id"`
	ExternalID      string    `json:"external_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	OriginalBytes   int64     `json:"original_bytes"`
	CompressedBytes int64     `json:"compressed_bytes"`
	DurationSeconds float64   `json:"duration_seconds"`
	CaptionsURL     *string   `json:"captions_url"`
	CreatedAt       time.Time `json:"created_at"`
}

type IngestResponse struct {
	Medium         MediumResponse `json:"medium"`
	CaptionWarning string         `json:"caption_warning,omitempty"`
}

type LibraryResponse struct {
	Account AccountResponse  `json:"account"`
	Media   []MediumResponse `json:"media"`
}

type GeneratePostRequest struct {
	Platform string `json:"platform" validate:"required,oneof=twitter linkedin instagram"`
}

type PostResponse struct {
	Text string `json:"text"`
}

func toAccountResponse(a *models.Account) AccountResponse {
	return AccountResponse{
		ID:                a.ID,
		Email:             a.Email,
		Plan:              a.Plan,
		UploadsThisPeriod: a.UploadsThisPeriod,
		UploadLimit:       a.UploadLimit,
	}
}

func toMediumResponse(m *models.Medium) MediumResponse {
	return MediumResponse{
		ID:              m.ID,
		ExternalID:      m.ExternalID,
		Title:           m.Title,
		Description:     m.Description,
		OriginalBytes:   m.OriginalBytes,
		CompressedBytes: m.CompressedBytes,
		DurationSeconds: m.DurationSeconds,
		CaptionsURL:     m.CaptionsURL,
		CreatedAt:       m.CreatedAt,
	}
}

func toLibraryResponse(l *service.Library) LibraryResponse {
	media := make([]MediumResponse, 0, len(l.Media))
	for i := range l.Media {
		media = append(media, toMediumResponse(&l.Media[i]))
	}
	return LibraryResponse{
		Account: toAccountResponse(l.Account),
		Media:   media,
	}
}
