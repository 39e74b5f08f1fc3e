package bot

import "strings"

// commandPrefixWords is the number of fixed leading words in the lookup
// command grammars ("find team information <name...>", "find player
// information <first> <last>").
const commandPrefixWords = 3

// ExtractTeamNameTokens returns the tokens after the fixed command prefix,
// which together form the team name. Returns nil when the command carries no
// name at all.
func ExtractTeamNameTokens(words []string) []string {
	if len(words) <= commandPrefixWords {
		return nil
	}
	return words[commandPrefixWords:]
}

// JoinTokens renders name tokens as a single space-separated string.
func JoinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}
