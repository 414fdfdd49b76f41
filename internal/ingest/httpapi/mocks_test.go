package httpapi

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/clipforge/clipforge/internal/ingest/models"
	"github.com/clipforge/clipforge/internal/ingest/service"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Ingest(ctx context.Context, externalAccountID string, req service.IngestRequest) (*models.IngestResult, error) {
	args := m.Called(ctx, externalAccountID, req)
	if v := args.Get(0); v != nil {
		return v.(*models.IngestResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ServiceMock) ListMedia(ctx context.Context, externalAccountID string) (*service.Library, error) {
	args := m.Called(ctx, externalAccountID)
	if v := args.Get(0); v != nil {
		return v.(*service.Library), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ServiceMock) GetMedium(ctx context.Context, externalAccountID string, mediumID uuid.UUID) (*models.Medium, error) {
	args := m.Called(ctx, externalAccountID, mediumID)
	if v := args.Get(0); v != nil {
		return v.(*models.Medium), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ServiceMock) GeneratePost(ctx context.Context, externalAccountID string, mediumID uuid.UUID, platform string) (string, error) {
	args := m.Called(ctx, externalAccountID, mediumID, platform)
	return args.String(0), args.Error(1)
}
