// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromViperAppliesBoundKeys(t *testing.T) {
	v := viper.New()
	v.Set("cache_size", 4096)
	v.Set("max_node_size", 1000)
	v.Set("dvo", "once")

	var c config
	for _, opt := range OptionsFromViper(v) {
		opt(&c)
	}

	assert.Equal(t, 4096, c.cachesize)
	assert.Equal(t, 1000, c.maxnodesize)
	require.NotNil(t, c.dvoSchedule)
	assert.IsType(t, &AlwaysOnce{}, c.dvoSchedule)
}

func TestOptionsFromViperLeavesUnsetKeysAtDefaults(t *testing.T) {
	v := viper.New()

	c := defaultConfig(3)
	for _, opt := range OptionsFromViper(v) {
		opt(&c)
	}

	assert.Equal(t, defaultConfig(3), c)
}

func TestOptionsFromViperConvergeSchedule(t *testing.T) {
	v := viper.New()
	v.Set("dvo", "converge")

	var c config
	for _, opt := range OptionsFromViper(v) {
		opt(&c)
	}

	assert.IsType(t, &AlwaysUntilConvergence{}, c.dvoSchedule)
}
