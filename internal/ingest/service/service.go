package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clipforge/clipforge/internal/ingest/models"
	"github.com/clipforge/clipforge/internal/ingest/quota"
	"github.com/clipforge/clipforge/internal/ingest/repository"
)

// Gateways only report whether their own call succeeded. Classifying a
// failure as fatal or degrading happens here and nowhere else.

type TranscodeGateway interface {
	Submit(ctx context.Context, data []byte, filename string) (*models.MediaDescriptor, error)
}

type TranscriptionGateway interface {
	Transcribe(ctx context.Context, data []byte, filename string) (*models.Transcription, error)
}

type ArtifactStore interface {
	Put(ctx context.Context, externalID, subtitleText string) (string, error)
	Get(ctx context.Context, externalID string) (string, error)
}

type SynthesisGateway interface {
	Synthesize(ctx context.Context, platform models.Platform, transcript string) (string, error)
}

// IdentityProvider maps an external subject id to its attributes, consulted
// once when an account is created on first sight.
type IdentityProvider interface {
	Lookup(ctx context.Context, externalID string) (*models.Identity, error)
}

type Service struct {
	accounts    repository.AccountRepository
	media       repository.MediaRepository
	quota       *quota.Ledger
	identity    IdentityProvider
	transcoder  TranscodeGateway
	transcriber TranscriptionGateway
	artifacts   ArtifactStore
	synthesizer SynthesisGateway
	logger      zerolog.Logger

	clock func() time.Time
	idGen func() uuid.UUID
}

type Deps struct {
	Accounts    repository.AccountRepository
	Media       repository.MediaRepository
	Quota       *quota.Ledger
	Identity    IdentityProvider
	Transcoder  TranscodeGateway
	Transcriber TranscriptionGateway
	Artifacts   ArtifactStore
	Synthesizer SynthesisGateway
	Logger      zerolog.Logger
}

func New(d Deps) *Service {
	return &Service{
		accounts:    d.Accounts,
		media:       d.Media,
		quota:       d.Quota,
		identity:    d.Identity,
		transcoder:  d.Transcoder,
		transcriber: d.Transcriber,
		artifacts:   d.Artifacts,
		synthesizer: d.Synthesizer,
		logger:      d.Logger.With().Str("component", "ingest_service").Logger(),
		clock:       time.Now,
		idGen:       uuid.New,
	}
}

type IngestRequest struct {
	Data              []byte
	Filename          string
	Title             string
	Description       string
	DeclaredBytes     int64
	CaptionsRequested bool
}

// Ingest runs one pipeline attempt: resolve account, validate, quota gate,
// transcode, optional captioning, atomic commit. The transcode step is
// mandatory; captioning degrades to a warning on failure.
func (s *Service) Ingest(ctx context.Context, externalAccountID string, req IngestRequest) (*models.IngestResult, error) {
	account, err := s.resolveAccount(ctx, externalAccountID)
	if err != nil {
		return nil, err
	}

	if len(req.Data) == 0 || req.DeclaredBytes <= 0 || req.Title == "" || req.Description == "" {
		return nil, models.ErrInvalidArgument
	}

	if err := s.quota.Admit(account); err != nil {
		return nil, err
	}

	desc, err := s.transcoder.Submit(ctx, req.Data, req.Filename)
	if err != nil {
		s.logger.Error().Err(err).Str("account_id", account.ID.String()).Msg("transcode failed")
		return nil, fmt.Errorf("%w: %v", models.ErrTranscodeFailed, err)
	}

	var captionsURL *string
	var warning string
	if req.CaptionsRequested {
		captionsURL, warning = s.caption(ctx, desc.ExternalID, req)
	}

	m := &models.Medium{
		ID:              s.idGen(),
		AccountID:       account.ID,
		ExternalID:      desc.ExternalID,
		Title:           req.Title,
		Description:     req.Description,
		OriginalBytes:   req.DeclaredBytes,
		CompressedBytes: desc.Bytes,
		DurationSeconds: desc.DurationSeconds,
		CaptionsURL:     captionsURL,
		CreatedAt:       s.clock(),
	}

	if err := s.media.CommitIngest(ctx, m, models.NewMediumIngested(m)); err != nil {
		return nil, fmt.Errorf("commit ingest: %w", err)
	}

	s.logger.Info().
		Str("medium_id", m.ID.String()).
		Str("external_id", m.ExternalID).
		Bool("captioned", captionsURL != nil).
		Msg("medium ingested")

	return &models.IngestResult{Medium: m, CaptionWarning: warning}, nil
}

// caption runs the best-effort enrichment. Any failure turns into a
// warning; the attempt keeps going without a captions URL.
func (s *Service) caption(ctx context.Context, externalID string, req IngestRequest) (*string, string) {
	tr, err := s.transcriber.Transcribe(ctx, req.Data, req.Filename)
	if err != nil {
		s.logger.Warn().Err(err).Str("external_id", externalID).Msg("transcription failed")
		return nil, fmt.Sprintf("captions unavailable: transcription failed: %v", err)
	}

	url, err := s.artifacts.Put(ctx, externalID, tr.SubtitleText)
	if err != nil {
		s.logger.Warn().Err(err).Str("external_id", externalID).Msg("caption upload failed")
		return nil, fmt.Sprintf("captions unavailable: storing subtitles failed: %v", err)
	}

	return &url, ""
}

// Library is what the listing endpoint renders: the account snapshot plus
// its media, newest first.
type Library struct {
	Account *models.Account
	Media   []models.Medium
}

func (s *Service) ListMedia(ctx context.Context, externalAccountID string) (*Library, error) {
	account, err := s.resolveAccount(ctx, externalAccountID)
	if err != nil {
		return nil, err
	}

	media, err := s.media.ListByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	return &Library{Account: account, Media: media}, nil
}

func (s *Service) GetMedium(ctx context.Context, externalAccountID string, mediumID uuid.UUID) (*models.Medium, error) {
	if mediumID == uuid.Nil {
		return nil, models.ErrInvalidArgument
	}

	account, err := s.resolveAccount(ctx, externalAccountID)
	if err != nil {
		return nil, err
	}

	return s.media.GetByID(ctx, mediumID, account.ID)
}

// GeneratePost turns a stored transcript into platform-ready copy. All
// preconditions are checked before the synthesis service is called, and the
// operation has no side effects, so callers can retry freely.
func (s *Service) GeneratePost(ctx context.Context, externalAccountID string, mediumID uuid.UUID, platform string) (string, error) {
	p, err := models.ParsePlatform(platform)
	if err != nil {
		return "", err
	}

	m, err := s.GetMedium(ctx, externalAccountID, mediumID)
	if err != nil {
		return "", err
	}
	if m.CaptionsURL == nil {
		return "", models.ErrNoCaptions
	}

	transcript, err := s.artifacts.Get(ctx, m.ExternalID)
	if err != nil {
		return "", fmt.Errorf("fetch transcript: %w", err)
	}
	if strings.TrimSpace(transcript) == "" {
		return "", models.ErrNoCaptions
	}

	text, err := s.synthesizer.Synthesize(ctx, p, transcript)
	if err != nil {
		return "", fmt.Errorf("synthesize post: %w", err)
	}

	return text, nil
}

// resolveAccount finds the account for an external subject, creating it on
// first sight. Creation is idempotent: losing the insert race to a
// concurrent request just means reading the winner's row.
func (s *Service) resolveAccount(ctx context.Context, externalID string) (*models.Account, error) {
	if externalID == "" {
		return nil, models.ErrInvalidArgument
	}

	account, err := s.accounts.GetByExternalID(ctx, externalID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	identity, err := s.identity.Lookup(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("identity lookup: %w", err)
	}

	account = &models.Account{
		ID:                s.idGen(),
		ExternalID:        externalID,
		Email:             identity.Email,
		Plan:              models.DefaultPlan,
		UploadsThisPeriod: 0,
		UploadLimit:       models.DefaultUploadLimit,
		CreatedAt:         s.clock(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return s.accounts.GetByExternalID(ctx, externalID)
		}
		return nil, err
	}

	return account, nil
}
