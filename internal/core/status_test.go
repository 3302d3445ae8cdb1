package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotifierSupersedesPreviousStatus(t *testing.T) {
	t.Parallel()
	var n Notifier

	n.Show("Generating code...", StatusLoading)
	seq := n.Show("Code generated.", StatusSuccess)

	msg, kind := n.Current()
	require.Equal(t, "Code generated.", msg)
	require.Equal(t, StatusSuccess, kind)
	require.True(t, n.Expire(seq))
	require.False(t, n.Visible())
}

func TestNotifierStaleTimerIsIgnored(t *testing.T) {
	t.Parallel()
	var n Notifier

	stale := n.Show("Code generated.", StatusSuccess)
	n.Show("session not found", StatusError)

	// The first status's auto-clear fires after it was superseded; the newer
	// status must survive.
	require.False(t, n.Expire(stale))
	msg, kind := n.Current()
	require.Equal(t, "session not found", msg)
	require.Equal(t, StatusError, kind)
}

func TestNotifierLoadingNeverExpires(t *testing.T) {
	t.Parallel()
	var n Notifier

	seq := n.Show("Generating code...", StatusLoading)
	require.False(t, n.Expire(seq))
	require.True(t, n.Visible())
}

func TestNotifierExpireOnEmpty(t *testing.T) {
	t.Parallel()
	var n Notifier
	require.False(t, n.Expire(0))
}
