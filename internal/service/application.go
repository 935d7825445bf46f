package service

import (
	"context"
	"errors"
	"fmt"

	"job-board/internal/domain"
	"job-board/internal/repository"

	"github.com/sirupsen/logrus"
)

// ApplicationService 负责职位申请。访问控制全部交给 OwnershipResolver。
type ApplicationService struct {
	apps   repository.ApplicationRepository
	jobs   repository.JobRepository
	owners *OwnershipResolver
}

func NewApplicationService(apps repository.ApplicationRepository, jobs repository.JobRepository, owners *OwnershipResolver) *ApplicationService {
	if apps == nil || jobs == nil || owners == nil {
		panic("dependencies cannot be nil for ApplicationService")
	}
	return &ApplicationService{apps: apps, jobs: jobs, owners: owners}
}

// Apply 由用户向职位投递申请。职位不存在返回 ErrNotFound，重复投递返回 ErrConflict。
func (s *ApplicationService) Apply(ctx context.Context, actor domain.Identity, jobID uint) (*domain.Application, error) {
	if actor.IsZero() {
		return nil, ErrUnauthenticated
	}
	if !actor.IsUser() {
		return nil, fmt.Errorf("%w: only users can apply to jobs", ErrForbidden)
	}
	logCtx := logrus.WithFields(logrus.Fields{"username": actor.Key, "job_id": jobID})

	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, mapRepoError(err)
	}
	exists, err := s.apps.Exists(ctx, jobID, actor.Key)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if exists {
		logCtx.Warn("Duplicate application rejected")
		return nil, fmt.Errorf("%w: already applied to job %d", ErrConflict, jobID)
	}

	app := &domain.Application{JobID: jobID, Username: actor.Key}
	if err := s.apps.Create(ctx, app); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEntry):
			return nil, fmt.Errorf("%w: already applied to job %d", ErrConflict, jobID)
		case errors.Is(err, repository.ErrForeignKey):
			// 检查之后职位被并发删除
			return nil, ErrNotFound
		}
		logCtx.WithError(err).Error("Failed to create application")
		return nil, mapRepoError(err)
	}
	logCtx.WithField("application_id", app.ID).Info("Application created")
	return app, nil
}

// Get 返回申请；只有申请人和职位所属公司可以查看。
func (s *ApplicationService) Get(ctx context.Context, actor domain.Identity, id uint) (*domain.Application, error) {
	return s.owners.AuthorizeApplication(ctx, actor, id)
}

// Delete 由申请人或职位所属公司撤销申请，返回删除前的记录。
func (s *ApplicationService) Delete(ctx context.Context, actor domain.Identity, id uint) (*domain.Application, error) {
	app, err := s.owners.AuthorizeApplication(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.apps.Delete(ctx, id); err != nil {
		return nil, mapRepoError(err)
	}
	logrus.WithFields(logrus.Fields{"actor": actor.String(), "application_id": id}).Info("Application deleted")
	return app, nil
}

// ListForActor 用户看到自己的申请，公司看到投递到自己职位的申请。
func (s *ApplicationService) ListForActor(ctx context.Context, actor domain.Identity) ([]domain.Application, error) {
	var (
		apps []domain.Application
		err  error
	)
	switch {
	case actor.IsUser():
		apps, err = s.apps.ListByUser(ctx, actor.Key)
	case actor.IsCompany():
		apps, err = s.apps.ListByCompany(ctx, actor.Key)
	default:
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, mapRepoError(err)
	}
	return apps, nil
}
