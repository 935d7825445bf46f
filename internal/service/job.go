package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-board/internal/domain"
	"job-board/internal/patch"
	"job-board/internal/repository"

	"github.com/sirupsen/logrus"
)

// CreateJobInput 是发布职位时的字段。所属公司总是取自调用方身份。
type CreateJobInput struct {
	Title  string
	Salary int
	Equity float64
}

// JobService 负责职位的发布、查询、更新和删除。
type JobService struct {
	jobs    repository.JobRepository
	patches *patch.Builder
	owners  *OwnershipResolver
}

func NewJobService(jobs repository.JobRepository, owners *OwnershipResolver) *JobService {
	if jobs == nil || owners == nil {
		panic("dependencies cannot be nil for JobService")
	}
	// 职位没有密码列，不需要 hasher
	return &JobService{jobs: jobs, patches: patch.NewBuilder(nil), owners: owners}
}

// Create 由公司发布职位。
func (s *JobService) Create(ctx context.Context, actor domain.Identity, in CreateJobInput) (*domain.Job, error) {
	if actor.IsZero() {
		return nil, ErrUnauthenticated
	}
	if !actor.IsCompany() {
		return nil, fmt.Errorf("%w: only companies can post jobs", ErrForbidden)
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBadRequest)
	}
	if in.Salary < 0 {
		return nil, fmt.Errorf("%w: salary cannot be negative", ErrBadRequest)
	}
	if in.Equity < 0 || in.Equity > 1 {
		return nil, fmt.Errorf("%w: equity must be between 0 and 1", ErrBadRequest)
	}

	job := &domain.Job{Title: in.Title, Salary: in.Salary, Equity: in.Equity, Company: actor.Key}
	if err := s.jobs.Create(ctx, job); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			// 公司已被删除，token 仍然有效
			return nil, ErrNotFound
		}
		logrus.WithField("company", actor.Key).WithError(err).Error("Failed to create job")
		return nil, mapRepoError(err)
	}
	logrus.WithFields(logrus.Fields{"company": actor.Key, "job_id": job.ID}).Info("Job created")
	return job, nil
}

// List 返回所有职位。
func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return jobs, nil
}

// Get 返回单个职位。
func (s *JobService) Get(ctx context.Context, id uint) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return job, nil
}

// Update 对职位执行选择性更新，只有所属公司可以更新。
func (s *JobService) Update(ctx context.Context, actor domain.Identity, id uint, fields patch.Fields) (*domain.Job, error) {
	if _, err := s.owners.AuthorizeJob(ctx, actor, id); err != nil {
		return nil, err
	}
	logCtx := logrus.WithFields(logrus.Fields{"job_id": id, "fields": fields.Columns()})

	stmt, err := s.patches.Build(ctx, jobsTable, fields, id)
	if err != nil {
		logCtx.WithError(err).Warn("Job update rejected")
		return nil, mapPatchError(err)
	}
	if err := validateAssignments(stmt); err != nil {
		return nil, err
	}

	updated, err := s.jobs.Update(ctx, stmt)
	if err != nil {
		logCtx.WithError(err).Warn("Job update failed")
		return nil, mapRepoError(err)
	}
	logCtx.Info("Job updated")
	return updated, nil
}

// Delete 删除职位并返回删除前的记录，其申请级联删除。
func (s *JobService) Delete(ctx context.Context, actor domain.Identity, id uint) (*domain.Job, error) {
	job, err := s.owners.AuthorizeJob(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return nil, mapRepoError(err)
	}
	logrus.WithFields(logrus.Fields{"company": actor.Key, "job_id": id}).Info("Job deleted")
	return job, nil
}
