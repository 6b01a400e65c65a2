package service

import (
	"context"
	"time"

	"github.com/roomify-io/roomify-server/internal/modules/model"
	"github.com/roomify-io/roomify-server/internal/modules/repo"
)

// updatedAtLayout is RFC 3339 with milliseconds. Second precision is not
// enough: consecutive saves must produce strictly increasing stamps.
const updatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

type ProjectService interface {
	Save(ctx context.Context, userID string, p *model.Project) (*model.Project, error)
	Get(ctx context.Context, userID, projectID string) (*model.Project, error)
	List(ctx context.Context, userID string) ([]*model.Project, error)
}

type projectService struct {
	r repo.ProjectRepo
}

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r}
}

// Save persists the project as sent by the client, stamping updatedAt and
// defaulting ownerId. Non-required fields are stored verbatim.
func (s *projectService) Save(ctx context.Context, userID string, p *model.Project) (*model.Project, error) {
	if p == nil || p.ID == "" || p.SourceImage == "" {
		return nil, ErrMissingRequiredFields
	}

	if p.OwnerID == "" {
		p.OwnerID = userID
	}
	p.UpdatedAt = time.Now().UTC().Format(updatedAtLayout)

	if err := s.r.Save(ctx, userID, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Get(ctx context.Context, userID, projectID string) (*model.Project, error) {
	return s.r.Get(ctx, userID, projectID)
}

func (s *projectService) List(ctx context.Context, userID string) ([]*model.Project, error) {
	projects, err := s.r.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Listings are always served with isPublic set; the gallery view in the
	// client reads this flag and expects it on every entry.
	for _, p := range projects {
		p.IsPublic = true
	}
	return projects, nil
}
