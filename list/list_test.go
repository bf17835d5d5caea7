package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	tests := []struct {
		name string
		do   func(l *Forward[int])
		want []int
	}{
		{
			name: "empty",
			do:   func(l *Forward[int]) {},
			want: []int{},
		},
		{
			name: "push back",
			do: func(l *Forward[int]) {
				l.PushBack(1)
				l.PushBack(2)
				l.PushBack(3)
			},
			want: []int{1, 2, 3},
		},
		{
			name: "push front",
			do: func(l *Forward[int]) {
				l.PushFront(1)
				l.PushFront(2)
				l.PushBack(3)
			},
			want: []int{2, 1, 3},
		},
		{
			name: "pop to empty then reuse",
			do: func(l *Forward[int]) {
				l.PushBack(1)
				l.PopFront()
				l.PushBack(2)
			},
			want: []int{2},
		},
		{
			name: "fifo",
			do: func(l *Forward[int]) {
				for i := 0; i < 5; i++ {
					l.PushBack(i)
				}
				l.PopFront()
				l.PopFront()
			},
			want: []int{2, 3, 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Forward[int]{}
			tt.do(l)
			assert.Equal(t, tt.want, l.Slice())
			assert.Equal(t, len(tt.want), l.Len())
			assert.Equal(t, len(tt.want) == 0, l.Empty())
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want[0], l.Front())
				assert.Equal(t, tt.want[len(tt.want)-1], l.Back())
			}
		})
	}
}

func TestForward_PopFront(t *testing.T) {
	l := NewForward[string]()
	l.PushBack("a")
	l.PushBack("b")

	assert.Equal(t, "a", l.PopFront())
	assert.Equal(t, "b", l.PopFront())
	assert.True(t, l.Empty())
	assert.Nil(t, l.head)
	assert.Nil(t, l.tail)

	assert.PanicsWithValue(t, "list: PopFront on empty Forward", func() {
		l.PopFront()
	})
	assert.Panics(t, func() { l.Front() })
	assert.Panics(t, func() { l.Back() })
}

func TestForward_String(t *testing.T) {
	l := NewForward[int]()
	assert.Equal(t, "", l.String())

	l.PushBack(10)
	l.PushBack(20)
	assert.Equal(t, "10 20", l.String())
}

func TestReverse(t *testing.T) {
	l := NewReverse[int]()
	assert.True(t, l.Empty())

	for i := 1; i <= 4; i++ {
		l.PushBack(i)
		assert.Equal(t, i, l.Back())
	}

	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []int{4, 3, 2, 1}, l.Slice())
	assert.Equal(t, "4 3 2 1", l.String())

	assert.Equal(t, 4, l.PopBack())
	assert.Equal(t, 3, l.PopBack())
	assert.Equal(t, 2, l.Back())
	assert.Equal(t, 2, l.Len())

	l.PopBack()
	l.PopBack()
	assert.True(t, l.Empty())
	assert.Nil(t, l.tail)

	assert.PanicsWithValue(t, "list: PopBack on empty Reverse", func() {
		l.PopBack()
	})
}

func TestIterator_Nil(t *testing.T) {
	var i *Iterator[int]
	assert.False(t, i.Next())
}

func TestCircular_Push(t *testing.T) {
	l := NewCircular[int]()
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())

	l.PushBack(2)
	l.PushBack(3)
	l.PushFront(1)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2, 3}, l.Slice())
	assert.Equal(t, "1 2 3", l.String())
	assert.Equal(t, 1, l.Front().Value)
	assert.Equal(t, 3, l.Back().Value)

	// wraps around
	assert.Same(t, l.Front(), l.Back().Next())
}

func TestCircular_Remove(t *testing.T) {
	tests := []struct {
		name     string
		remove   int
		want     []int
		wantNext int
	}{
		{
			name:     "head",
			remove:   1,
			want:     []int{2, 3, 4},
			wantNext: 2,
		},
		{
			name:     "middle",
			remove:   3,
			want:     []int{1, 2, 4},
			wantNext: 4,
		},
		{
			name:     "tail",
			remove:   4,
			want:     []int{1, 2, 3},
			wantNext: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewCircular[int]()
			var target *Element[int]
			for i := 1; i <= 4; i++ {
				e := l.PushBack(i)
				if i == tt.remove {
					target = e
				}
			}

			next := l.Remove(target)
			require.NotNil(t, next)
			assert.Equal(t, tt.wantNext, next.Value)
			assert.Equal(t, tt.want, l.Slice())
			assert.Equal(t, 3, l.Len())
			assert.Same(t, l.Front(), l.Back().Next())
			assert.Nil(t, target.Next())
		})
	}
}

func TestCircular_RemoveLast(t *testing.T) {
	l := NewCircular[string]()
	e := l.PushBack("only")

	assert.Same(t, e, e.Next())
	assert.Nil(t, l.Remove(e))
	assert.True(t, l.Empty())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())

	assert.Panics(t, func() { l.Remove(e) })
}

func TestCircular_RemoveForeign(t *testing.T) {
	a, b := NewCircular[int](), NewCircular[int]()
	a.PushBack(1)
	e := b.PushBack(1)

	assert.Panics(t, func() { a.Remove(e) })
	assert.Panics(t, func() { a.Remove(nil) })
}
