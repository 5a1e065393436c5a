package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unklstewy/airforcenone/pkg/registry"
)

// TestCheckCatalogFit tests the warning for a catalog that cannot feed the policy.
func TestCheckCatalogFit(t *testing.T) {
	planeAlert := registry.New([]registry.Record{
		{ICAO: "ae001f", Category: "USAF"},
		{ICAO: "43c6f4", Category: "Governments"},
	})
	builtin := registry.New([]registry.Record{
		{ICAO: "ae001f", Country: "USA"},
	})

	tests := []struct {
		name   string
		policy string
		reg    *registry.Registry
		fits   bool
	}{
		{"Category catalog under country policy", "country", planeAlert, false},
		{"Category catalog under category policy", "category", planeAlert, true},
		{"Country catalog under category policy", "category", builtin, false},
		{"Country catalog under country policy", "country", builtin, true},
		{"Empty registry", "country", registry.Empty(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			logger := zap.New(core).Sugar()

			assert.Equal(t, tt.fits, checkCatalogFit(tt.policy, tt.reg, logger))
			if tt.fits {
				assert.Zero(t, logs.Len())
			} else {
				assert.Equal(t, 1, logs.Len())
			}
		})
	}
}
