package ports

// FileSystem abstracts the file system operations the tool performs,
// so reports and badges can be captured in tests without touching disk.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating parent directories as
	// needed.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Stat returns the size in bytes of the file at path.
	Stat(path string) (int64, error)
}
