package job

import (
	"context"
	"testing"

	"nexusai-site/internal/domain"
)

func TestStatic_ReturnsDeepCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStatic([]domain.JobListing{{
		ID:               "ai-engineer",
		Responsibilities: []string{"Ship models"},
		Requirements:     []string{"Python"},
		Tags:             []string{"AI"},
	}})

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	list[0].Tags[0] = "changed"
	list[0].Requirements[0] = "changed"

	got, err := repo.GetByID(ctx, "ai-engineer")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Responsibilities[0] = "changed"

	again, _ := repo.List(ctx)
	j := again[0]
	if j.Tags[0] != "AI" || j.Requirements[0] != "Python" || j.Responsibilities[0] != "Ship models" {
		t.Fatalf("catalog job was mutated: %+v", j)
	}
}
