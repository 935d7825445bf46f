package service

import (
	"context"
	"errors"
	"fmt"

	"job-board/internal/domain"
	"job-board/internal/repository"
)

// OwnershipResolver 判断调用方是否控制某个资源。
// 所有检查遵循同一顺序：未认证 -> 取资源 (不存在则 NotFound) -> 比较归属 (否则 Forbidden)。
type OwnershipResolver struct {
	jobs repository.JobRepository
	apps repository.ApplicationRepository
}

func NewOwnershipResolver(jobs repository.JobRepository, apps repository.ApplicationRepository) *OwnershipResolver {
	if jobs == nil || apps == nil {
		panic("repositories cannot be nil for OwnershipResolver")
	}
	return &OwnershipResolver{jobs: jobs, apps: apps}
}

// AuthorizeCompany 要求 actor 就是 handle 对应的公司。
func (r *OwnershipResolver) AuthorizeCompany(actor domain.Identity, handle string) error {
	if actor.IsZero() {
		return ErrUnauthenticated
	}
	if !actor.IsCompany() || actor.Key != handle {
		return fmt.Errorf("%w: %s cannot manage company %s", ErrForbidden, actor, handle)
	}
	return nil
}

// AuthorizeUser 要求 actor 就是 username 对应的用户。
func (r *OwnershipResolver) AuthorizeUser(actor domain.Identity, username string) error {
	if actor.IsZero() {
		return ErrUnauthenticated
	}
	if !actor.IsUser() || actor.Key != username {
		return fmt.Errorf("%w: %s cannot manage user %s", ErrForbidden, actor, username)
	}
	return nil
}

// AuthorizeJob 要求 actor 是发布该职位的公司，返回职位。
func (r *OwnershipResolver) AuthorizeJob(ctx context.Context, actor domain.Identity, jobID uint) (*domain.Job, error) {
	if actor.IsZero() {
		return nil, ErrUnauthenticated
	}
	job, err := r.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if !ownsJob(actor, job) {
		return nil, fmt.Errorf("%w: %s does not own job %d", ErrForbidden, actor, jobID)
	}
	return job, nil
}

// AuthorizeApplication 允许两方访问申请：申请人本人，以及职位所属公司。
func (r *OwnershipResolver) AuthorizeApplication(ctx context.Context, actor domain.Identity, appID uint) (*domain.Application, error) {
	if actor.IsZero() {
		return nil, ErrUnauthenticated
	}
	app, err := r.apps.FindByID(ctx, appID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	switch actor.Kind {
	case domain.ActorUser:
		if app.Username == actor.Key {
			return app, nil
		}
	case domain.ActorCompany:
		job, err := r.jobs.FindByID(ctx, app.JobID)
		if err != nil {
			// 申请存在但职位已不存在：无法证明归属
			if errors.Is(err, repository.ErrNotFound) {
				break
			}
			return nil, mapRepoError(err)
		}
		if ownsJob(actor, job) {
			return app, nil
		}
	}
	return nil, fmt.Errorf("%w: %s cannot access application %d", ErrForbidden, actor, appID)
}

func ownsJob(actor domain.Identity, job *domain.Job) bool {
	return actor.IsCompany() && job.Company == actor.Key
}
