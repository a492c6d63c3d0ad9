// Package driven defines the outbound ports of the sheetfeed core:
// interfaces implemented by storage, auth and configuration adapters.
package driven
