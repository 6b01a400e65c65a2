package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roomify-io/roomify-server/internal/config"
	"github.com/roomify-io/roomify-server/internal/modules/model"
)

// MockHostingConfigRepo is a mock implementation of repo.HostingConfigRepo
type MockHostingConfigRepo struct {
	mock.Mock
}

func (m *MockHostingConfigRepo) Get(ctx context.Context, userID string) (*model.HostingConfig, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HostingConfig), args.Error(1)
}

func (m *MockHostingConfigRepo) Put(ctx context.Context, userID string, cfg *model.HostingConfig) error {
	args := m.Called(ctx, userID, cfg)
	return args.Error(0)
}

// MockSiteStore is a mock implementation of SiteStore
type MockSiteStore struct {
	mock.Mock
}

func (m *MockSiteStore) EnsurePrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

func hostingTestConfig() *config.Config {
	return &config.Config{
		Hosting: config.HostingConfig{
			PublicDomain: "roomify.site",
			SitePrefix:   "sites",
		},
	}
}

func TestHostingService_GetOrCreate_Existing(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockHostingConfigRepo{}
	mockSites := &MockSiteStore{}
	mockRepo.On("Get", ctx, "user-1").Return(&model.HostingConfig{Subdomain: "roomify-existing"}, nil)

	svc := NewHostingService(mockRepo, mockSites, hostingTestConfig(), zap.NewNop())

	hc := svc.GetOrCreate(ctx, "user-1")
	require.NotNil(t, hc)
	assert.Equal(t, "roomify-existing", hc.Subdomain)
	mockSites.AssertNotCalled(t, "EnsurePrefix")
}

func TestHostingService_GetOrCreate_CreatesNew(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockHostingConfigRepo{}
	mockSites := &MockSiteStore{}
	mockRepo.On("Get", ctx, "user-1").Return(nil, model.ErrHostingConfigNotFound)
	mockSites.On("EnsurePrefix", ctx, mock.MatchedBy(func(prefix string) bool {
		return strings.HasPrefix(prefix, "sites/roomify-")
	})).Return(nil)
	mockRepo.On("Put", ctx, "user-1", mock.AnythingOfType("*model.HostingConfig")).Return(nil)

	svc := NewHostingService(mockRepo, mockSites, hostingTestConfig(), zap.NewNop())

	hc := svc.GetOrCreate(ctx, "user-1")
	require.NotNil(t, hc)
	assert.True(t, strings.HasPrefix(hc.Subdomain, "roomify-"))
	mockRepo.AssertExpectations(t)
	mockSites.AssertExpectations(t)
}

func TestHostingService_GetOrCreate_SiteCreationFails(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockHostingConfigRepo{}
	mockSites := &MockSiteStore{}
	mockRepo.On("Get", ctx, "user-1").Return(nil, model.ErrHostingConfigNotFound)
	mockSites.On("EnsurePrefix", ctx, mock.AnythingOfType("string")).Return(errors.New("bucket down"))

	svc := NewHostingService(mockRepo, mockSites, hostingTestConfig(), zap.NewNop())

	assert.Nil(t, svc.GetOrCreate(ctx, "user-1"))
	mockRepo.AssertNotCalled(t, "Put")
}

func TestHostingService_GetOrCreate_PersistFails(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockHostingConfigRepo{}
	mockSites := &MockSiteStore{}
	mockRepo.On("Get", ctx, "user-1").Return(nil, model.ErrHostingConfigNotFound)
	mockSites.On("EnsurePrefix", ctx, mock.AnythingOfType("string")).Return(nil)
	mockRepo.On("Put", ctx, "user-1", mock.AnythingOfType("*model.HostingConfig")).
		Return(errors.New("kv unavailable"))

	svc := NewHostingService(mockRepo, mockSites, hostingTestConfig(), zap.NewNop())

	assert.Nil(t, svc.GetOrCreate(ctx, "user-1"))
}

func TestHostingService_GetOrCreate_LookupFails(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockHostingConfigRepo{}
	mockSites := &MockSiteStore{}
	mockRepo.On("Get", ctx, "user-1").Return(nil, errors.New("kv unavailable"))

	svc := NewHostingService(mockRepo, mockSites, hostingTestConfig(), zap.NewNop())

	assert.Nil(t, svc.GetOrCreate(ctx, "user-1"))
	mockSites.AssertNotCalled(t, "EnsurePrefix")
}
