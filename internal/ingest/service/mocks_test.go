package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/clipforge/clipforge/internal/ingest/models"
)

type TranscoderMock struct {
	mock.Mock
}

func (m *TranscoderMock) Submit(ctx context.Context, data []byte, filename string) (*models.MediaDescriptor, error) {
	args := m.Called(ctx, data, filename)
	if v := args.Get(0); v != nil {
		return v.(*models.MediaDescriptor), args.Error(1)
	}
	return nil, args.Error(1)
}

type TranscriberMock struct {
	mock.Mock
}

func (m *TranscriberMock) Transcribe(ctx context.Context, data []byte, filename string) (*models.Transcription, error) {
	args := m.Called(ctx, data, filename)
	if v := args.Get(0); v != nil {
		return v.(*models.Transcription), args.Error(1)
	}
	return nil, args.Error(1)
}

type ArtifactsMock struct {
	mock.Mock
}

func (m *ArtifactsMock) Put(ctx context.Context, externalID, subtitleText string) (string, error) {
	args := m.Called(ctx, externalID, subtitleText)
	return args.String(0), args.Error(1)
}

func (m *ArtifactsMock) Get(ctx context.Context, externalID string) (string, error) {
	args := m.Called(ctx, externalID)
	return args.String(0), args.Error(1)
}

type SynthesizerMock struct {
	mock.Mock
}

func (m *SynthesizerMock) Synthesize(ctx context.Context, platform models.Platform, transcript string) (string, error) {
	args := m.Called(ctx, platform, transcript)
	return args.String(0), args.Error(1)
}

type IdentityMock struct {
	mock.Mock
}

func (m *IdentityMock) Lookup(ctx context.Context, externalID string) (*models.Identity, error) {
	args := m.Called(ctx, externalID)
	if v := args.Get(0); v != nil {
		return v.(*models.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}
