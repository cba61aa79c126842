package chainmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		name  string
		input uint32
		want  uint32
	}{
		{"zero", 0, 1},
		{"one", 1, 1},
		{"two", 2, 2},
		{"three", 3, 4},
		{"already a power", 1024, 1024},
		{"just above a power", 1025, 2048},
		{"just below a power", 4095, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextPowerOf2(tt.input))
		})
	}
}

func TestNextPrime(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"below two", 0, 2},
		{"two", 2, 2},
		{"already prime", 7, 7},
		{"even", 8, 11},
		{"odd composite", 9, 11},
		{"typical capacity", 1000, 1009},
		{"doubled capacity", 2048, 2053},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextPrime(tt.input))
		})
	}
}
