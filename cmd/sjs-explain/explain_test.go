package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjslang/sjsc/pkg/theorysolver"
)

const mistyped = `
constraints:
- {id: a, lhs: x, rhs: Int, line: 1}
- {id: b, lhs: y, rhs: x, line: 2}
- {id: c, lhs: y, rhs: String, line: 3}
- {id: d, lhs: z, rhs: Bool, line: 4}
`

func writeProblem(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testOptions(input string) (*explainOptions, *bytes.Buffer) {
	var out bytes.Buffer
	o := newExplainOptions(&out)
	o.Input = input
	o.Logger, _ = test.NewNullLogger()
	return o, &out
}

func TestValidate(t *testing.T) {
	type tc struct {
		Name   string
		Modify func(o *explainOptions)
		Errors []string
	}

	for _, tt := range []tc{
		{
			Name:   "valid",
			Modify: func(o *explainOptions) {},
		},
		{
			Name:   "missing input",
			Modify: func(o *explainOptions) { o.Input = "" },
			Errors: []string{"--input is required"},
		},
		{
			Name:   "unknown strategy",
			Modify: func(o *explainOptions) { o.Strategy = "smt" },
			Errors: []string{`unknown explanation strategy "smt"`},
		},
		{
			Name: "every problem is reported",
			Modify: func(o *explainOptions) {
				o.Timeout = -1
				o.Enumerate = 2
				o.Minimize = true
			},
			Errors: []string{
				"--timeout must not be negative",
				"--enumerate and --minimize are mutually exclusive",
			},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			o, _ := testOptions("problem.yaml")
			tt.Modify(o)
			err := o.Validate()
			if len(tt.Errors) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.Errors {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestRunExplainsTypeErrors(t *testing.T) {
	input := writeProblem(t, mistyped)
	for _, strategy := range theorysolver.StrategyNames() {
		t.Run(strategy, func(t *testing.T) {
			o, out := testOptions(input)
			o.Strategy = strategy

			err := o.Run(context.Background())
			assert.Equal(t, TypeErrors(1), err)

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			require.Len(t, lines, 3)
			assert.Equal(t, "Found 1 type errors:", lines[0])
			assert.Regexp(t, `^  line [123]: \S+ = \S+ \([abc]\)$`, lines[1])
			assert.Contains(t, lines[2], "z: Bool")
		})
	}
}

func TestRunWellTyped(t *testing.T) {
	o, out := testOptions(writeProblem(t, "constraints:\n- {id: a, lhs: x, rhs: Int}\n"))
	require.NoError(t, o.Run(context.Background()))
	assert.Equal(t, "well-typed\nassignment: x: Int\n", out.String())
}

func TestRunHardContradiction(t *testing.T) {
	o, _ := testOptions(writeProblem(t, `
constraints:
- {id: a, lhs: x, rhs: Int, hard: true}
- {id: b, lhs: x, rhs: String, hard: true}
- {id: c, lhs: y, rhs: Int}
`))
	err := o.Run(context.Background())
	assert.ErrorIs(t, err, theorysolver.ErrHardUnsat)
}

func TestRunEnumerate(t *testing.T) {
	o, out := testOptions(writeProblem(t, mistyped))
	o.Enumerate = 2
	assert.Equal(t, TypeErrors(2), o.Run(context.Background()))

	assert.Contains(t, out.String(), "Explanation 1:")
	assert.Contains(t, out.String(), "Explanation 2:")
	assert.NotContains(t, out.String(), "Explanation 3:")
}

func TestRunEnumerateWellTyped(t *testing.T) {
	o, out := testOptions(writeProblem(t, "constraints:\n- {id: a, lhs: x, rhs: Int}\n"))
	o.Enumerate = 3
	require.NoError(t, o.Run(context.Background()))
	assert.Equal(t, "well-typed\n", out.String())
}

func TestRunWritesMetrics(t *testing.T) {
	o, _ := testOptions(writeProblem(t, mistyped))
	o.MetricsOut = filepath.Join(t.TempDir(), "metrics.txt")
	assert.Equal(t, TypeErrors(1), o.Run(context.Background()))

	data, err := os.ReadFile(o.MetricsOut)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sjs_theory_check_duration_seconds")
	assert.Contains(t, string(data), "sjs_unsat_cores_total")
}

func TestStrategiesCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newStrategiesCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "greedy\nmaxsat\nsat (default)\n", out.String())
}
