package metric

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/c360studio/semstreams/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/hozo2owl/export"
	"github.com/c360studio/hozo2owl/hozo"
	"github.com/c360studio/hozo2owl/mapper"
	"github.com/c360studio/hozo2owl/namespace"
)

var _ mapper.Observer = (*Collector)(nil)

const document = `<PROJECT><W_CONCEPTS>
	<CONCEPT id="c1"><LABEL>Pump</LABEL><SLOTS>
		<SLOT role="part" class_constraint="yamato:Engine|yamato:Motor"/>
		<SLOT role="rating" class_constraint="yamato:Engine" value="42"/>
	</SLOTS></CONCEPT>
</W_CONCEPTS></PROJECT>`

func TestCollector_CountsConversion(t *testing.T) {
	doc, err := hozo.Parse(strings.NewReader(document))
	require.NoError(t, err)

	c := NewCollector()
	table := namespace.MustTable(namespace.Entry{Prefix: "yamato", IRI: "http://www.hozo.jp/owl/YAMATO.owl#"})
	_, err = mapper.New(table, mapper.Options{Observer: c}).Convert(doc, &export.LineBuffer{})
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(c.statements.WithLabelValues(string(mapper.KindPrefix))))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.statements.WithLabelValues(string(mapper.KindLabel))))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.statements.WithLabelValues(string(mapper.KindUnionOf))))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.skipped.WithLabelValues(string(mapper.SkipLiteralNotString))))
}

func TestCollector_ObserveRun(t *testing.T) {
	c := NewCollector()
	c.ObserveRun(nil, 250*time.Millisecond)
	c.ObserveRun(errors.WrapInvalid(stderrors.New("bad"), "Mapper", "Convert", "validate document"), time.Second)
	c.ObserveRun(stderrors.New("disk"), time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues(ResultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues(ResultFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.duration))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := NewCollector()
	c.StatementEmitted(mapper.KindLabel)
	c.ObserveRun(nil, time.Millisecond)

	path := filepath.Join(t.TempDir(), "hozo2owl.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `hozo2owl_mapper_statements_total{kind="label"} 1`)
	assert.Contains(t, string(data), `hozo2owl_convert_runs_total{result="success"} 1`)
}

func TestCollector_Nil(t *testing.T) {
	var c *Collector
	c.StatementEmitted(mapper.KindLabel)
	c.SlotSkipped(mapper.SkipNoConstraints)
	c.ObserveRun(nil, time.Second)
	assert.Nil(t, c.Registry())
	assert.NoError(t, c.WriteTextfile("/nonexistent/x.prom"))
}
