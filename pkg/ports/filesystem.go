package ports

// FileSystem abstracts the file access used for settings, assets and exports.
type FileSystem interface {
	// ReadFile reads a settings file, font or raster asset.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes an exported image or debug output, creating parent directories.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)
}
