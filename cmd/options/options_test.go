/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package options_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenpipe/cmd/options"
	"bennypowers.dev/tokenpipe/export"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	options.AddExportFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestResolve_Defaults(t *testing.T) {
	opts, err := options.Resolve(newFlags(t), export.Options{})
	require.NoError(t, err)
	assert.Equal(t, export.Options{TailwindVersion: "3.x"}, opts)
}

func TestResolve_Precedence(t *testing.T) {
	fromConfig := export.Options{
		IncludeComments: true,
		Header:          "from config",
		ScopeClass:      "dark",
		TailwindVersion: "4.x",
	}

	t.Run("config over defaults", func(t *testing.T) {
		opts, err := options.Resolve(newFlags(t), fromConfig)
		require.NoError(t, err)
		assert.True(t, opts.IncludeComments)
		assert.Equal(t, "from config", opts.Header)
		assert.Equal(t, "4.x", opts.TailwindVersion)
	})

	t.Run("env over config", func(t *testing.T) {
		t.Setenv("TOKENPIPE_HEADER", "from env")
		t.Setenv("TOKENPIPE_USE_MAP", "true")
		opts, err := options.Resolve(newFlags(t), fromConfig)
		require.NoError(t, err)
		assert.Equal(t, "from env", opts.Header)
		assert.True(t, opts.UseMap)
		assert.Equal(t, "dark", opts.ScopeClass)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("TOKENPIPE_HEADER", "from env")
		opts, err := options.Resolve(newFlags(t, "--header", "from flag", "--tailwind-version", "3.x"), fromConfig)
		require.NoError(t, err)
		assert.Equal(t, "from flag", opts.Header)
		assert.Equal(t, "3.x", opts.TailwindVersion)
	})
}
