package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkNodes(t *testing.T) {
	// 3 is the root, 1 and 2 are its children, 4 hangs off 2
	tr, err := LinkNodes([][2]int{{0, 0}, {4, 0}, {1, 2}, {0, 0}}, []string{"a", "b", "c", "d"})
	require.NoError(t, err)

	assert.Equal(t, "c", tr.Root().Key)
	assert.Nil(t, tr.Root().Parent)
	assert.Equal(t, []string{"c", "a", "b", "d"}, tr.Keys(PreOrder))
	assert.Equal(t, []string{"a", "c", "d", "b"}, tr.Keys(InOrder))
	assert.Equal(t, 4, tr.Len())
	checkParents(t, tr.Root())
}

func TestLinkNodes_Empty(t *testing.T) {
	tr, err := LinkNodes[int](nil, nil)
	require.NoError(t, err)
	assert.Nil(t, tr.Root())
	assert.True(t, tr.Complete())
}

func TestLinkNodes_Errors(t *testing.T) {
	tests := []struct {
		name     string
		children [][2]int
		keys     []int
		wantErr  error
	}{
		{
			name:     "key count",
			children: [][2]int{{0, 0}},
			keys:     []int{1, 2},
			wantErr:  ErrKeyCountMismatch,
		},
		{
			name:     "too large",
			children: [][2]int{{2, 0}},
			wantErr:  ErrIndexOutOfRange,
		},
		{
			name:     "negative",
			children: [][2]int{{0, -1}},
			wantErr:  ErrIndexOutOfRange,
		},
		{
			name:     "own child",
			children: [][2]int{{1, 0}},
			wantErr:  ErrCycle,
		},
		{
			name:     "shared child",
			children: [][2]int{{2, 3}, {0, 0}, {2, 0}},
			wantErr:  ErrMultipleParents,
		},
		{
			name:     "two children same node",
			children: [][2]int{{2, 2}, {0, 0}},
			wantErr:  ErrMultipleParents,
		},
		{
			name:     "loop",
			children: [][2]int{{2, 0}, {3, 0}, {1, 0}},
			wantErr:  ErrCycle,
		},
		{
			name:     "forest",
			children: [][2]int{{2, 0}, {0, 0}, {0, 0}},
			wantErr:  ErrDisconnected,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := LinkNodes(tt.children, tt.keys)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, tr)
		})
	}
}
