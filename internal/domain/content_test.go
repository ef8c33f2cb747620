package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterState_IsZero(t *testing.T) {
	cases := []struct {
		state FilterState
		want  bool
	}{
		{FilterState{}, true},
		{FilterState{Category: "All"}, true},
		{FilterState{Category: "all"}, true},
		{FilterState{Category: "Trends"}, false},
		{FilterState{Tag: "AI"}, false},
		{FilterState{Query: "ai"}, false},
		{FilterState{Category: "All", Query: "ai"}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.state.IsZero(), "state %+v", tc.state)
	}
}
