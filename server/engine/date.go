package engine

import "time"

// gameDateLayout is month-first; day-first or year-first tokens never parse.
const gameDateLayout = "01-02-2006"

// ValidateGameDate checks that token is a real calendar date in MM-DD-YYYY
// form and returns it unchanged. It is a gate, not a canonicalizer.
func ValidateGameDate(token string) (string, error) {
	if _, err := time.Parse(gameDateLayout, token); err != nil {
		return "", Wrap(KindInvalidGameDate, err, "game_date must be a valid date in MM-DD-YYYY format")
	}
	return token, nil
}
