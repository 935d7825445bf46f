package service_test

import (
	"context"
	"testing"

	"job-board/internal/domain"
	"job-board/internal/repository"
	"job-board/internal/repository/mocks"
	"job-board/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newResolver() (*service.OwnershipResolver, *mocks.JobRepository, *mocks.ApplicationRepository) {
	jobs := new(mocks.JobRepository)
	apps := new(mocks.ApplicationRepository)
	return service.NewOwnershipResolver(jobs, apps), jobs, apps
}

var (
	alice  = domain.UserIdentity("alice")
	bob    = domain.UserIdentity("bob")
	acme   = domain.CompanyIdentity("acme")
	globex = domain.CompanyIdentity("globex")
	nobody = domain.Identity{}
)

func TestOwnership_Company(t *testing.T) {
	r, _, _ := newResolver()

	assert.NoError(t, r.AuthorizeCompany(acme, "acme"))
	assert.ErrorIs(t, r.AuthorizeCompany(globex, "acme"), service.ErrForbidden)
	assert.ErrorIs(t, r.AuthorizeCompany(domain.UserIdentity("acme"), "acme"), service.ErrForbidden)
	assert.ErrorIs(t, r.AuthorizeCompany(nobody, "acme"), service.ErrUnauthenticated)
}

func TestOwnership_User(t *testing.T) {
	r, _, _ := newResolver()

	assert.NoError(t, r.AuthorizeUser(alice, "alice"))
	assert.ErrorIs(t, r.AuthorizeUser(bob, "alice"), service.ErrForbidden)
	assert.ErrorIs(t, r.AuthorizeUser(domain.CompanyIdentity("alice"), "alice"), service.ErrForbidden)
	assert.ErrorIs(t, r.AuthorizeUser(nobody, "alice"), service.ErrUnauthenticated)
}

func TestOwnership_Job(t *testing.T) {
	r, jobs, _ := newResolver()
	ctx := context.Background()
	jobs.On("FindByID", ctx, uint(7)).Return(&domain.Job{ID: 7, Company: "acme"}, nil)
	jobs.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrNotFound)

	job, err := r.AuthorizeJob(ctx, acme, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), job.ID)

	_, err = r.AuthorizeJob(ctx, globex, 7)
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = r.AuthorizeJob(ctx, alice, 7)
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = r.AuthorizeJob(ctx, acme, 99)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = r.AuthorizeJob(ctx, nobody, 7)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}

func TestOwnership_Application(t *testing.T) {
	r, jobs, apps := newResolver()
	ctx := context.Background()
	apps.On("FindByID", ctx, uint(1)).Return(&domain.Application{ID: 1, JobID: 7, Username: "alice"}, nil)
	jobs.On("FindByID", ctx, uint(7)).Return(&domain.Job{ID: 7, Company: "acme"}, nil)

	tests := []struct {
		name    string
		actor   domain.Identity
		wantErr error
	}{
		{"applicant", alice, nil},
		{"job owner", acme, nil},
		{"other user", bob, service.ErrForbidden},
		{"other company", globex, service.ErrForbidden},
		{"company named like applicant", domain.CompanyIdentity("alice"), service.ErrForbidden},
		{"user named like owner", domain.UserIdentity("acme"), service.ErrForbidden},
		{"anonymous", nobody, service.ErrUnauthenticated},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, err := r.AuthorizeApplication(ctx, tc.actor, 1)
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "alice", app.Username)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, app)
		})
	}
}

func TestOwnership_ApplicationNotFoundPrecedesForbidden(t *testing.T) {
	r, jobs, apps := newResolver()
	ctx := context.Background()
	apps.On("FindByID", ctx, uint(404)).Return(nil, repository.ErrNotFound)

	for _, actor := range []domain.Identity{alice, bob, acme, globex} {
		_, err := r.AuthorizeApplication(ctx, actor, 404)
		assert.ErrorIs(t, err, service.ErrNotFound, actor.String())
		assert.NotErrorIs(t, err, service.ErrForbidden, actor.String())
	}
	jobs.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestOwnership_ApplicationOrphanedJob(t *testing.T) {
	r, jobs, apps := newResolver()
	ctx := context.Background()
	apps.On("FindByID", ctx, uint(2)).Return(&domain.Application{ID: 2, JobID: 8, Username: "alice"}, nil)
	jobs.On("FindByID", ctx, uint(8)).Return(nil, repository.ErrNotFound)

	_, err := r.AuthorizeApplication(ctx, acme, 2)
	assert.ErrorIs(t, err, service.ErrForbidden)
}
