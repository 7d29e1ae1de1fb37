package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordCheckIn()
	c.RecordCheckIn()
	c.RecordCheckOut()
	c.RecordSickReport()
	c.RecordBreakStart()
	c.RecordBreakEnd()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.checkIns))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.checkOuts))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sickReports))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.breakStarts))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.breakEnds))
}
