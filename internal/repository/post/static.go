package post

import (
	"context"
	"slices"

	"nexusai-site/internal/domain"
)

type staticRepo struct {
	posts []domain.Post
}

// NewStatic serves posts from an in-memory slice that is never mutated.
func NewStatic(posts []domain.Post) Repository {
	return &staticRepo{posts: clonePosts(posts)}
}

func (r *staticRepo) List(_ context.Context) ([]domain.Post, error) {
	return clonePosts(r.posts), nil
}

func (r *staticRepo) GetBySlug(_ context.Context, slug string) (*domain.Post, error) {
	for _, p := range r.posts {
		if p.Slug == slug {
			out := clonePost(p)
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func clonePost(p domain.Post) domain.Post {
	p.Tags = slices.Clone(p.Tags)
	return p
}

func clonePosts(posts []domain.Post) []domain.Post {
	out := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, clonePost(p))
	}
	return out
}
