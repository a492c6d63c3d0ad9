package sheets

import (
	"fmt"
	"strconv"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
)

// gridIDMask is the constant Google XORs into worksheet ids to produce
// the numeric grid id carried in public-facing URLs (the gid parameter).
const gridIDMask = 31578

// WorksheetIDToGridID converts a worksheet's opaque alphanumeric id to
// its numeric grid id: base36Decode(id) XOR 31578. The first worksheet of
// a spreadsheet ("od6") maps to grid id 0.
func WorksheetIDToGridID(worksheetID string) (int64, error) {
	if !isCanonicalBase36(worksheetID) {
		return 0, fmt.Errorf("%w: worksheet id %q is not base36", domain.ErrInvalidInput, worksheetID)
	}
	v, err := strconv.ParseInt(worksheetID, 36, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: worksheet id %q: %v", domain.ErrInvalidInput, worksheetID, err)
	}
	return v ^ gridIDMask, nil
}

// GridIDToWorksheetID converts a numeric grid id back to the worksheet
// id: base36Encode(gid XOR 31578). Round-trips exactly with
// WorksheetIDToGridID for all canonical ids.
func GridIDToWorksheetID(gridID int64) (string, error) {
	if gridID < 0 {
		return "", fmt.Errorf("%w: grid id must be >= 0, got %d", domain.ErrInvalidInput, gridID)
	}
	return strconv.FormatInt(gridID^gridIDMask, 36), nil
}

// isCanonicalBase36 reports whether s is a non-empty lowercase base36
// string without a redundant leading zero. Only canonical ids round-trip
// through the codec.
func isCanonicalBase36(s string) bool {
	if s == "" {
		return false
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
