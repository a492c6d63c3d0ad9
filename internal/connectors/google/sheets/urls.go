package sheets

import (
	"strconv"
	"strings"
)

// DefaultBaseURL is the fixed base of the spreadsheets feed API.
const DefaultBaseURL = "https://spreadsheets.google.com/feeds"

// All feed requests use the JSON representation.
const altJSON = "?alt=json"

// spreadsheetsURL is the authenticated user's full spreadsheet list.
func spreadsheetsURL(base string) string {
	return base + "/spreadsheets/private/full" + altJSON
}

// worksheetURL is the worksheet metadata entry for one tab.
func worksheetURL(base, worksheetID string, tabID int) string {
	return base + "/worksheets/" + worksheetID + "/private/full/" + strconv.Itoa(tabID) + altJSON
}

// privateRowsURL is the authenticated row feed for a worksheet tab.
func privateRowsURL(base, worksheetID string, tabID int) string {
	return base + "/list/" + worksheetID + "/" + strconv.Itoa(tabID) + "/private/full" + altJSON
}

// publicRowsURL is the unauthenticated row feed for a published
// spreadsheet. Public feeds are addressed by spreadsheet key and skip
// worksheet resolution entirely.
func publicRowsURL(base, key string, tabID int) string {
	return base + "/list/" + key + "/" + strconv.Itoa(tabID) + "/public/values" + altJSON
}

// worksheetIDFromFeedID derives the worksheet id from the last path
// segment of a sheet's feed id URL.
func worksheetIDFromFeedID(feedID string) string {
	if i := strings.LastIndex(feedID, "/"); i >= 0 {
		return feedID[i+1:]
	}
	return feedID
}
