package metrics

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjslang/sjsc/pkg/theorysolver"
)

func TestListener(t *testing.T) {
	assert := assert.New(t)

	const strategy = "listener-test"
	l := NewListener[string, struct{}](strategy)

	assert.Equal(theorysolver.Continue, l.OnCore([]string{"a", "b"}))
	assert.Equal(theorysolver.Continue, l.OnCore([]string{"c"}))
	assert.Equal(theorysolver.Continue, l.OnWeakening(1))
	assert.Equal(theorysolver.Continue, l.OnFixingSet(struct{}{}, []string{"a"}))

	assert.Equal(2.0, testutil.ToFloat64(coresTotal.WithLabelValues(strategy)))
	assert.Equal(1.0, testutil.ToFloat64(weakeningsTotal.WithLabelValues(strategy)))
}

func TestEmittersThreadSafety(t *testing.T) {
	const strategy = "thread-safety-test"
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			EmitWeakening(strategy)
			RegisterTheoryCheckSuccess(time.Millisecond)
		}()
	}
	wg.Wait()
	assert.Equal(t, 100.0, testutil.ToFloat64(weakeningsTotal.WithLabelValues(strategy)))
}

func TestWriteText(t *testing.T) {
	r := prometheus.NewPedanticRegistry()
	MustRegister(r)

	RegisterTheoryCheckSuccess(2 * time.Millisecond)
	RegisterTheoryCheckFailure(time.Millisecond)
	RegisterSolve("write-text-test", Fixed, time.Second)
	EmitCore("write-text-test", 3)
	EmitFixingSet("write-text-test", 1)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))

	var p expfmt.TextParser
	families, err := p.TextToMetricFamilies(&buf)
	require.NoError(t, err)
	for _, name := range []string{
		"sjs_theory_check_duration_seconds",
		"sjs_unsat_cores_total",
		"sjs_unsat_core_size",
		"sjs_fixing_set_size",
		"sjs_solve_duration_seconds",
	} {
		assert.Contains(t, families, name)
	}
}
