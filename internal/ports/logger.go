package ports

// Logger is the single-call logging facility handed to adapters.
// Implementations decide where the line ends up.
type Logger interface {
	Log(msg string)
}
