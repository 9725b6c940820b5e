package logger

// FormatChainExported exposes formatChain for black-box tests.
func FormatChainExported(err error) string {
	return formatChain(err)
}
