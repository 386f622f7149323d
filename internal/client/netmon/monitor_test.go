package netmon

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func TestPingMonitor_StartsOffline(t *testing.T) {
	m := NewPingMonitor(&fakePinger{err: errors.New("down")}, time.Minute, nil)
	assert.False(t, m.IsOnline())
}

func TestPingMonitor_Probe(t *testing.T) {
	pinger := &fakePinger{}
	m := NewPingMonitor(pinger, time.Minute, nil)

	assert.True(t, m.Probe(context.Background()))
	assert.True(t, m.IsOnline())

	pinger.err = errors.New("connection refused")
	assert.False(t, m.Probe(context.Background()))
	assert.False(t, m.IsOnline())
}

func TestPingMonitor_SubscribeReceivesTransitions(t *testing.T) {
	pinger := &fakePinger{err: errors.New("down")}
	m := NewPingMonitor(pinger, time.Minute, nil)

	ch, cancel := m.Subscribe()
	defer cancel()

	// offline -> online
	pinger.err = nil
	m.probe(context.Background())

	select {
	case online := <-ch:
		assert.True(t, online)
	case <-time.After(time.Second):
		t.Fatal("no transition received")
	}

	// No change, no notification
	m.probe(context.Background())
	select {
	case <-ch:
		t.Fatal("unexpected notification for unchanged state")
	default:
	}
}

func TestPingMonitor_CancelSubscription(t *testing.T) {
	m := NewPingMonitor(&fakePinger{}, time.Minute, nil)

	ch, cancel := m.Subscribe()
	cancel()

	// Channel is closed after cancel
	_, open := <-ch
	require.False(t, open)

	// Transitions after cancel must not panic
	m.setOnline(true)
}
