package composer

import "strings"

// Tokenize splits raw content into whitespace-delimited word tokens. Runs of
// whitespace collapse to single boundaries and leading/trailing whitespace
// produces no tokens, so the result never contains empty strings. Tokenize is
// total: it succeeds on any input, including the empty string.
func Tokenize(content string) []string {
	return strings.Fields(content)
}

// JoinTokens reassembles tokens with single spaces. Joining the tokens of a
// string reproduces it modulo whitespace collapsing, which is the engine's
// content-preservation contract.
func JoinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}
