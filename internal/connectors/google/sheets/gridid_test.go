package sheets

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
)

func TestWorksheetIDToGridID_KnownVectors(t *testing.T) {
	tests := []struct {
		worksheetID string
		gridID      int64
	}{
		// The first three worksheets of a spreadsheet.
		{worksheetID: "od6", gridID: 0},
		{worksheetID: "od7", gridID: 1},
		{worksheetID: "od4", gridID: 2},
	}

	for _, tt := range tests {
		t.Run(tt.worksheetID, func(t *testing.T) {
			gid, err := WorksheetIDToGridID(tt.worksheetID)
			require.NoError(t, err)
			assert.Equal(t, tt.gridID, gid)

			id, err := GridIDToWorksheetID(tt.gridID)
			require.NoError(t, err)
			assert.Equal(t, tt.worksheetID, id)
		})
	}
}

func TestGridIDCodec_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		gid := rng.Int63n(1 << 40)

		id, err := GridIDToWorksheetID(gid)
		require.NoError(t, err)

		back, err := WorksheetIDToGridID(id)
		require.NoError(t, err)
		assert.Equal(t, gid, back, "grid id %d via worksheet id %q", gid, id)
	}
}

func TestWorksheetIDCodec_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 1000; i++ {
		// Canonical base36 ids round-trip exactly.
		id := strconv.FormatInt(rng.Int63n(1<<40), 36)

		gid, err := WorksheetIDToGridID(id)
		require.NoError(t, err)

		back, err := GridIDToWorksheetID(gid)
		require.NoError(t, err)
		assert.Equal(t, id, back)
	}
}

func TestWorksheetIDToGridID_Invalid(t *testing.T) {
	for _, id := range []string{"", "OD6", "od-6", "0od6", "od6!"} {
		_, err := WorksheetIDToGridID(id)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "id %q", id)
	}
}

func TestGridIDToWorksheetID_Negative(t *testing.T) {
	_, err := GridIDToWorksheetID(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
