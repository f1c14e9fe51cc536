// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/AccelByte/extend-landing-promo/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintStatus(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  string
	}{
		{name: "not set", want: "offerEndTime: not set"},
		{name: "running", value: "1600", set: true, want: "offerEndTime: 1600 (1970-01-01T00:26:40Z, 10:00 left)"},
		{name: "expired", value: "900", set: true, want: "expired 100s ago"},
		{name: "malformed", value: "soon", set: true, want: `malformed value "soon"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			st := store.NewMemoryStore()
			if tt.set {
				require.NoError(t, st.Set(ctx, "offerEndTime", tt.value))
			}

			var out bytes.Buffer
			require.NoError(t, printStatus(ctx, &out, st, "offerEndTime", 1000))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, "offerEndTime", "1600"))

	var out bytes.Buffer
	require.NoError(t, reset(ctx, &out, st, "offerEndTime"))
	assert.Equal(t, "offerEndTime removed\n", out.String())

	_, found, err := st.Get(ctx, "offerEndTime")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"serve", "status", "reset"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
