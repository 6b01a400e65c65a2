package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/roomify-io/roomify-server/internal/modules/model"
)

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Save(ctx context.Context, userID string, p *model.Project) error {
	args := m.Called(ctx, userID, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Get(ctx context.Context, userID, projectID string) (*model.Project, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context, userID string) ([]*model.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func TestProjectService_Save(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		project *model.Project
		setup   func(*MockProjectRepo)
		wantErr error
	}{
		{
			name:    "successful save",
			project: &model.Project{ID: "proj-1", SourceImage: "data:image/png;base64,aGk="},
			setup: func(r *MockProjectRepo) {
				r.On("Save", ctx, "user-1", mock.AnythingOfType("*model.Project")).Return(nil)
			},
		},
		{
			name:    "missing id",
			project: &model.Project{SourceImage: "data:image/png;base64,aGk="},
			setup:   func(r *MockProjectRepo) {},
			wantErr: ErrMissingRequiredFields,
		},
		{
			name:    "missing source image",
			project: &model.Project{ID: "proj-1"},
			setup:   func(r *MockProjectRepo) {},
			wantErr: ErrMissingRequiredFields,
		},
		{
			name:    "nil project",
			project: nil,
			setup:   func(r *MockProjectRepo) {},
			wantErr: ErrMissingRequiredFields,
		},
		{
			name:    "repository error",
			project: &model.Project{ID: "proj-1", SourceImage: "x"},
			setup: func(r *MockProjectRepo) {
				r.On("Save", ctx, "user-1", mock.AnythingOfType("*model.Project")).
					Return(errors.New("kv unavailable"))
			},
			wantErr: errors.New("kv unavailable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockProjectRepo{}
			tt.setup(mockRepo)

			svc := NewProjectService(mockRepo)
			saved, err := svc.Save(ctx, "user-1", tt.project)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.project.ID, saved.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Save_StampsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockProjectRepo{}
	mockRepo.On("Save", ctx, "user-1", mock.AnythingOfType("*model.Project")).Return(nil)

	svc := NewProjectService(mockRepo)
	before := time.Now().UTC().Add(-time.Second)

	saved, err := svc.Save(ctx, "user-1", &model.Project{ID: "proj-1", SourceImage: "x"})
	require.NoError(t, err)

	stamped, err := time.Parse(updatedAtLayout, saved.UpdatedAt)
	require.NoError(t, err)
	assert.True(t, stamped.After(before))
}

func TestProjectService_Save_UpdatedAtAdvances(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockProjectRepo{}
	mockRepo.On("Save", ctx, "user-1", mock.AnythingOfType("*model.Project")).Return(nil)

	svc := NewProjectService(mockRepo)
	p := &model.Project{ID: "proj-1", SourceImage: "x"}

	first, err := svc.Save(ctx, "user-1", p)
	require.NoError(t, err)
	firstStamp := first.UpdatedAt

	time.Sleep(2 * time.Millisecond)

	second, err := svc.Save(ctx, "user-1", p)
	require.NoError(t, err)

	// stamps are millisecond RFC 3339 in UTC, so string order is time order
	assert.Greater(t, second.UpdatedAt, firstStamp,
		"a later save must carry a newer updatedAt")
}

func TestProjectService_Save_DefaultsOwner(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockProjectRepo{}
	mockRepo.On("Save", ctx, "user-1", mock.AnythingOfType("*model.Project")).Return(nil)

	svc := NewProjectService(mockRepo)

	saved, err := svc.Save(ctx, "user-1", &model.Project{ID: "proj-1", SourceImage: "x"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", saved.OwnerID)

	// caller-supplied owner is kept
	saved, err = svc.Save(ctx, "user-1", &model.Project{ID: "proj-2", SourceImage: "x", OwnerID: "someone-else"})
	require.NoError(t, err)
	assert.Equal(t, "someone-else", saved.OwnerID)
}

func TestProjectService_List_MarksPublic(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockProjectRepo{}
	mockRepo.On("List", ctx, "user-1").Return([]*model.Project{
		{ID: "a", SourceImage: "x", IsPublic: false},
		{ID: "b", SourceImage: "y", IsPublic: true},
	}, nil)

	svc := NewProjectService(mockRepo)
	projects, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	for _, p := range projects {
		assert.True(t, p.IsPublic)
	}
}

func TestProjectService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockProjectRepo{}
	mockRepo.On("Get", ctx, "user-1", "missing").Return(nil, model.ErrProjectNotFound)

	svc := NewProjectService(mockRepo)
	_, err := svc.Get(ctx, "user-1", "missing")
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
}
