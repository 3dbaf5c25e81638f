package ports

// LineReader reads one line of user input after showing a prompt.
// It returns io.EOF once the input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// CredentialPrompter asks the user for connection credentials
type CredentialPrompter interface {
	// Ask shows label and returns the answer without its line terminator
	Ask(label string) (string, error)

	// AskSecret is like Ask but does not echo the answer where possible
	AskSecret(label string) (string, error)
}
