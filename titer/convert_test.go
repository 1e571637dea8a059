package titer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		titer string
		want  int
	}{
		{"40", 40},
		{"320.0", 320},
		{"<20", 10},
		{">5120", 10240},
		{"20/40", 28},
		{"<320/640", 320},
		{"640/>1280", 1280},
		{"80.0/160", 113},
	}

	for _, tc := range tests {
		t.Run(tc.titer, func(t *testing.T) {
			got, err := Convert(tc.titer)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	t.Run("not numeric", func(t *testing.T) {
		for _, titer := range []string{"A", ">>5120", "<<40/80", "40/A"} {
			_, err := Convert(titer)
			assert.ErrorIs(t, err, ErrNotNumeric, titer)
		}
	})

	t.Run("zero titers", func(t *testing.T) {
		for _, titer := range []string{"<1", "0/40", "40/0"} {
			_, err := Convert(titer)
			assert.ErrorIs(t, err, ErrZeroTiter, titer)
		}
	})

	t.Run("plain zero is not rejected here", func(t *testing.T) {
		got, err := Convert("0")
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})
}
