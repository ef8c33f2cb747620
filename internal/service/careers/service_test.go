package careers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexusai-site/internal/domain"
	jobrepo "nexusai-site/internal/repository/job"
)

var fixture = []domain.JobListing{
	{ID: "ai-engineer", Title: "AI Engineer", Department: "Engineering", Description: "Build production ML systems.", Tags: []string{"AI", "Python"}},
	{ID: "data-scientist", Title: "Data Scientist", Department: "Data Science", Description: "Model customer data.", Tags: []string{"Statistics", "Python"}},
	{ID: "platform-engineer", Title: "Platform Engineer", Department: "Engineering", Description: "Run the inference fleet.", Tags: []string{"Kubernetes"}},
}

type failingRepo struct{}

func (failingRepo) List(context.Context) ([]domain.JobListing, error) {
	return nil, errors.New("boom")
}

func (failingRepo) GetByID(context.Context, string) (*domain.JobListing, error) {
	return nil, errors.New("boom")
}

func TestList_ByDepartment(t *testing.T) {
	svc := New(jobrepo.NewStatic(fixture))
	jobs, err := svc.List(context.Background(), domain.FilterState{Category: "Engineering"})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "ai-engineer", jobs[0].ID)
	assert.Equal(t, "platform-engineer", jobs[1].ID)
}

func TestList_TagAndQuery(t *testing.T) {
	svc := New(jobrepo.NewStatic(fixture))
	jobs, err := svc.List(context.Background(), domain.FilterState{Tag: "Python", Query: "customer"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "data-scientist", jobs[0].ID)
}

func TestGet(t *testing.T) {
	svc := New(jobrepo.NewStatic(fixture))
	job, err := svc.Get(context.Background(), "data-scientist")
	require.NoError(t, err)
	assert.Equal(t, "Data Science", job.Department)

	_, err = svc.Get(context.Background(), "chef")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDepartments(t *testing.T) {
	svc := New(jobrepo.NewStatic(fixture))
	deps, err := svc.Departments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Engineering", "Data Science"}, deps)
}

func TestRepositoryErrorPropagates(t *testing.T) {
	svc := New(failingRepo{})
	_, err := svc.List(context.Background(), domain.FilterState{})
	assert.Error(t, err)
	_, err = svc.Departments(context.Background())
	assert.Error(t, err)
}
