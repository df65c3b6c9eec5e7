package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCommand(t *testing.T) {
	m := New()

	m.ObserveCommand("painter", "paint", "ok")
	m.ObserveCommand("painter", "paint", "ok")
	m.ObserveCommand("voxel", "remove", "ignored")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.commands.WithLabelValues("painter", "paint", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commands.WithLabelValues("voxel", "remove", "ignored")))
}

func TestGaugesAndFrames(t *testing.T) {
	m := New()
	m.ObserveFrame()
	m.SetVoxels(13)
	m.SetPaintedCells(4)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.frames))
	assert.Equal(t, 13.0, testutil.ToFloat64(m.voxels))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.cells))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.SetVoxels(7)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "blockcraft_voxels 7"))
}
