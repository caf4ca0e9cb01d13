package eqtheory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(`
constraints:
- id: c1
  lhs: x
  rhs: Int
  hard: true
  line: 1
- id: c2
  lhs: y
  rhs: x
  line: 2
- id: c3
  lhs: Int
  rhs: x
  line: 4
`))
	require.NoError(t, err)

	assert.Equal(t, []Constraint{{ID: "c1", LHS: "x", RHS: "Int", Line: 1}}, p.Hard)
	assert.Equal(t, []Constraint{
		{ID: "c2", LHS: "y", RHS: "x", Line: 2},
		{ID: "c3", LHS: "Int", RHS: "x", Line: 4},
	}, p.Soft)
	assert.Equal(t, map[string]string{"c3": "c1"}, p.Redundant)
}

func TestLoadErrors(t *testing.T) {
	type tc struct {
		Name  string
		Input string
		Error string
	}

	for _, tt := range []tc{
		{
			Name: "duplicate identifier",
			Input: `
constraints:
- {id: a, lhs: x, rhs: Int}
- {id: a, lhs: y, rhs: Int}
`,
			Error: `duplicate constraint identifier "a" in input`,
		},
		{
			Name: "missing side",
			Input: `
constraints:
- {id: a, lhs: x}
`,
			Error: "constraint 0: id, lhs and rhs are required",
		},
		{
			Name:  "not yaml",
			Input: "constraints: [",
			Error: "decoding constraints",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.Input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.Error)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte("constraints:\n- {id: a, lhs: x, rhs: Int}\n"), 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, p.Soft, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(Constraint{ID: "a", LHS: "x", RHS: "Int", Line: 1})
	require.NoError(t, err)
	b, err := Fingerprint(Constraint{ID: "b", LHS: "Int", RHS: "x", Line: 9})
	require.NoError(t, err)
	c, err := Fingerprint(Constraint{ID: "a", LHS: "x", RHS: "String", Line: 1})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestIsConcrete(t *testing.T) {
	for term, want := range map[string]bool{
		"Int":    true,
		"String": true,
		"x":      false,
		"_t1":    false,
		"":       false,
	} {
		assert.Equal(t, want, IsConcrete(term), term)
	}
}

func TestAssignmentString(t *testing.T) {
	assert.Equal(t, "x: Int, y: String", Assignment{"y": "String", "x": "Int"}.String())
	assert.Equal(t, "", Assignment{}.String())
}
