package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err   error
	calls int
}

func (f *fakePinger) Ping(context.Context) error {
	f.calls++
	return f.err
}

func (f *fakePinger) Name() string { return "fake" }

type fakeGauge struct {
	values []bool
}

func (g *fakeGauge) SetProviderUp(up bool) { g.values = append(g.values, up) }

func TestProviderProbe_Run(t *testing.T) {
	client := &fakePinger{}
	gauge := &fakeGauge{}
	probe := NewProviderProbe(client, gauge, logger.Nop())

	require.NoError(t, probe.Run(context.Background()))
	status := probe.Status()
	assert.True(t, status.Up)
	assert.Equal(t, "fake", status.Backend)
	assert.False(t, status.LastRun.IsZero())

	client.err = errors.New("connection refused")
	assert.Error(t, probe.Run(context.Background()))
	status = probe.Status()
	assert.False(t, status.Up)
	assert.Equal(t, "connection refused", status.Error)

	assert.Equal(t, []bool{true, false}, gauge.values)
	assert.Equal(t, 2, client.calls)
}

func TestProviderProbe_NilGauge(t *testing.T) {
	probe := NewProviderProbe(&fakePinger{}, nil, logger.Nop())
	assert.NoError(t, probe.Run(context.Background()))
}

func TestCronManager_SetupJobs(t *testing.T) {
	cm := NewCronManager(NewProviderProbe(&fakePinger{}, nil, logger.Nop()), logger.Nop())
	require.NoError(t, cm.SetupJobs("@every 10m"))
	assert.Equal(t, 1, cm.Entries())

	cm.Start()
	cm.Stop()
}

func TestCronManager_InvalidSchedule(t *testing.T) {
	cm := NewCronManager(NewProviderProbe(&fakePinger{}, nil, logger.Nop()), logger.Nop())
	assert.Error(t, cm.SetupJobs("every now and then"))
}

func TestCronManager_NoProbe(t *testing.T) {
	cm := NewCronManager(nil, logger.Nop())
	require.NoError(t, cm.SetupJobs("@every 10m"))
	assert.Equal(t, 0, cm.Entries())
	assert.Nil(t, cm.Probe())
}
