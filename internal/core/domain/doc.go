// Package domain contains the core entities of the sheetfeed client:
// fetch configuration, projected feed shapes (spreadsheets, sheets, tabs,
// rows), stage events and the domain error taxonomy.
//
// Entities here are plain data with no dependency on the feeds transport;
// decoding of the wire format lives in the google/sheets connector.
package domain
