package sat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocVars(t *testing.T) {
	s := NewGini()
	assert.Equal(t, 1, s.AllocVars(3))
	assert.Equal(t, 4, s.AllocVars(2))
	assert.Equal(t, 6, s.AllocVars(0))
}

func TestAllocVarsOutsideWindowPanics(t *testing.T) {
	for _, tt := range []struct {
		Name string
		Do   func(s *GiniSolver)
	}{
		{
			Name: "after adding a clause",
			Do: func(s *GiniSolver) {
				s.AllocVars(1)
				s.AddClause(1)
			},
		},
		{
			Name: "after solving",
			Do: func(s *GiniSolver) {
				_, err := s.Solve()
				require.NoError(t, err)
			},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			s := NewGini()
			tt.Do(s)
			assert.PanicsWithValue(t,
				UsageError("variables may only be allocated before adding clauses or solving, or right after a reset"),
				func() { s.AllocVars(1) })
		})
	}
}

func TestAddClauseRejectsUnallocatedVariables(t *testing.T) {
	for _, tt := range []struct {
		Name string
		Lits []int
	}{
		{Name: "zero", Lits: []int{0}},
		{Name: "positive out of range", Lits: []int{3}},
		{Name: "negative out of range", Lits: []int{1, -4}},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			s := NewGini()
			s.AllocVars(2)
			assert.Panics(t, func() { s.AddClause(tt.Lits...) })
		})
	}
}

func TestAddClauseRejectsActivationVariables(t *testing.T) {
	s := NewGini()
	s.AllocVars(1)
	key := s.AddClause(1)
	assert.Panics(t, func() { s.AddClause(int(key)) })
}

func TestSolveModel(t *testing.T) {
	s := NewGini()
	offset := s.AllocVars(3)
	a, b, c := offset, offset+1, offset+2
	s.AddClause(a)
	s.AddClause(-b)
	s.AddClause(-a, c)

	result, err := s.Solve()
	require.NoError(t, err)
	require.True(t, result.Satisfiable())
	assert.Nil(t, result.Core)
	assert.True(t, result.Model.Value(a))
	assert.False(t, result.Model.Value(b))
	assert.True(t, result.Model.Value(c))
	assert.Len(t, result.Model, 2, "activation variables must not leak into the model")
}

func TestSolveCoreNamesClauses(t *testing.T) {
	s := NewGini()
	offset := s.AllocVars(2)
	a, b := offset, offset+1
	ka := s.AddClause(a)
	kb := s.AddClause(b)
	kna := s.AddClause(-a)

	result, err := s.Solve()
	require.NoError(t, err)
	require.False(t, result.Satisfiable())
	assert.Contains(t, result.Core, ka)
	assert.Contains(t, result.Core, kna)
	for _, key := range result.Core {
		assert.Contains(t, []ClauseKey{ka, kb, kna}, key)
	}
	assert.Equal(t, []int{-a}, s.Clause(kna))
}

func TestResetKeepsVariableUniverse(t *testing.T) {
	s := NewGini()
	offset := s.AllocVars(1)
	s.AddClause(offset)
	s.AddClause(-offset)
	result, err := s.Solve()
	require.NoError(t, err)
	require.False(t, result.Satisfiable())

	s.Reset()
	next := s.AllocVars(1)
	assert.Greater(t, next, offset)

	s.AddClause(offset, next)
	s.AddClause(-offset)
	result, err = s.Solve()
	require.NoError(t, err)
	require.True(t, result.Satisfiable())
	assert.True(t, result.Model.Value(next))
	assert.False(t, result.Model.Value(offset))
}

func TestClauseUnknownKeyPanics(t *testing.T) {
	s := NewGini()
	assert.Panics(t, func() { s.Clause(42) })
}

// pigeonhole adds clauses saying that n+1 pigeons sit in n holes, at
// most one per hole. Refuting it takes resolution exponential in n.
func pigeonhole(s *GiniSolver, holes int) {
	pigeons := holes + 1
	offset := s.AllocVars(pigeons * holes)
	in := func(p, h int) int { return offset + p*holes + h }

	for p := 0; p < pigeons; p++ {
		lits := make([]int, holes)
		for h := 0; h < holes; h++ {
			lits[h] = in(p, h)
		}
		s.AddClause(lits...)
	}
	for h := 0; h < holes; h++ {
		for p := 0; p < pigeons; p++ {
			for q := p + 1; q < pigeons; q++ {
				s.AddClause(-in(p, h), -in(q, h))
			}
		}
	}
}

func TestSolveTimeout(t *testing.T) {
	s := NewGini(WithTimeout(time.Millisecond))
	pigeonhole(s, 11)

	_, err := s.Solve()
	assert.ErrorIs(t, err, ErrTimeout)

	s.Reset()
	v := s.AllocVars(1)
	s.AddClause(v)
	result, err := s.Solve()
	require.NoError(t, err)
	require.True(t, result.Satisfiable())
	assert.True(t, result.Model.Value(v))
}
