package onboarding

// Config holds engine settings.
type Config struct {
	// TriviaCategory is the quiz catalog name whose routing key is
	// attached to the terminal General Trivia option.
	TriviaCategory string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		TriviaCategory: "General Trivia",
	}
}
