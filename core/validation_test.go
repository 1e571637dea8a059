package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		record := Record{"id": "14846I", "long": "A/VIETNAM/1194/2004"}
		assert.NoError(t, ValidateRecord(record))
	})

	t.Run("nil record", func(t *testing.T) {
		err := ValidateRecord(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("missing id", func(t *testing.T) {
		err := ValidateRecord(Record{"long": "A/VIETNAM/1194/2004"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingID)
	})

	t.Run("missing long", func(t *testing.T) {
		err := ValidateRecord(Record{"id": "14846I"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingLong)
	})
}

func TestValidateKind(t *testing.T) {
	assert.NoError(t, ValidateKind(KindAntigen))
	assert.NoError(t, ValidateKind(KindSerum))
	assert.ErrorIs(t, ValidateKind(Kind(0)), ErrInvalidKind)
	assert.ErrorIs(t, ValidateKind(Kind(7)), ErrInvalidKind)
}

func TestStringField(t *testing.T) {
	record := Record{"id": "14846I", "passage": 3.0}

	t.Run("string value", func(t *testing.T) {
		s, isString := StringField(record, "id")
		assert.True(t, isString)
		assert.Equal(t, "14846I", s)
	})

	t.Run("non-string value is coerced", func(t *testing.T) {
		s, isString := StringField(record, "passage")
		assert.False(t, isString)
		assert.Equal(t, "3", s)
	})

	t.Run("missing key", func(t *testing.T) {
		s, isString := StringField(record, "absent")
		assert.False(t, isString)
		assert.Empty(t, s)
	})
}
