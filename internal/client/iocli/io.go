package iocli

//go:generate moq -out io_mock.go . IO

// IO abstracts terminal interaction so commands stay testable.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)

	// ReadInput prompts and reads one trimmed line
	ReadInput(prompt string) (string, error)

	// ReadPassword prompts and reads a line with terminal echo disabled
	ReadPassword(prompt string) (string, error)

	Write(p []byte) (n int, err error)
}
