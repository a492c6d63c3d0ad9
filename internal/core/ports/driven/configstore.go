package driven

// ConfigStore provides access to persisted client configuration.
// Implementations handle storage (e.g. TOML files) and type conversion.
type ConfigStore interface {
	// GetString retrieves a string value, or "" if absent.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if absent.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false if absent.
	GetBool(key string) bool

	// Set stores a value. The value is persisted on Save.
	Set(key string, value any)

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the backing file path.
	Path() string
}
