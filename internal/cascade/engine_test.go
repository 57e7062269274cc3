package cascade_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/linostar/supercron/internal/cascade"
	"github.com/linostar/supercron/internal/crontab"
	"github.com/linostar/supercron/internal/testutil"
	"github.com/linostar/supercron/internal/trigger"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func storeWith(t *testing.T, table string) *crontab.Store {
	t.Helper()

	store := crontab.NewStore(&testutil.MemoryBackend{Content: table})
	require.NoError(t, store.Load())
	return store
}

func TestEngine_Fire(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		source      string
		events      []trigger.Event
		wantEnabled bool
	}{
		{
			name:        "on action enables",
			line:        "# 11 11 * * * echo 1 # SuperCron__echo1%on:echo2:enabled",
			source:      "echo2",
			events:      []trigger.Event{trigger.EventEnabled},
			wantEnabled: true,
		},
		{
			name:        "off action disables",
			line:        "11 11 * * * echo 1 # SuperCron__echo1%off:echo2:deleted",
			source:      "echo2",
			events:      []trigger.Event{trigger.EventDeleted},
			wantEnabled: false,
		},
		{
			name:        "toggle flips",
			line:        "11 11 * * * echo 1 # SuperCron__echo1%toggle:echo2:toggled",
			source:      "echo2",
			events:      []trigger.Event{trigger.EventToggled},
			wantEnabled: false,
		},
		{
			name:        "other source does not fire",
			line:        "# 11 11 * * * echo 1 # SuperCron__echo1%on:echo2:enabled",
			source:      "echo3",
			events:      []trigger.Event{trigger.EventEnabled},
			wantEnabled: false,
		},
		{
			name:        "other event does not fire",
			line:        "# 11 11 * * * echo 1 # SuperCron__echo1%on:echo2:enabled",
			source:      "echo2",
			events:      []trigger.Event{trigger.EventDisabled},
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storeWith(t, tt.line+"\n")
			cascade.New(store, discardLogger()).Fire(tt.source, tt.events...)

			jobs := store.FindByName("echo1")
			require.Len(t, jobs, 1)
			require.Equal(t, tt.wantEnabled, jobs[0].Enabled)
		})
	}
}

func TestEngine_Fire_SingleStep(t *testing.T) {
	// chain1 listens to root, chain2 listens to chain1. Firing root's event
	// must not ripple into chain2: cascade depth is exactly one.
	table := "# 1 1 * * * c1 # SuperCron__chain1%on:root:enabled\n" +
		"# 2 2 * * * c2 # SuperCron__chain2%on:chain1:enabled\n"
	store := storeWith(t, table)

	cascade.New(store, discardLogger()).Fire("root", trigger.EventEnabled)

	require.True(t, store.FindByName("chain1")[0].Enabled)
	require.False(t, store.FindByName("chain2")[0].Enabled, "cascades must not cascade")
}

func TestEngine_Fire_MultipleListeners(t *testing.T) {
	table := "# 1 1 * * * a # SuperCron__a%on:root:added\n" +
		"2 2 * * * b # SuperCron__b%off:root:added\n" +
		"3 3 * * * c # SuperCron__c%toggle:root:added\n"
	store := storeWith(t, table)

	cascade.New(store, discardLogger()).Fire("root", trigger.EventAdded)

	require.True(t, store.FindByName("a")[0].Enabled)
	require.False(t, store.FindByName("b")[0].Enabled)
	require.False(t, store.FindByName("c")[0].Enabled)
}
