package lenbucket

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	// WordLength is the length of the answer in a Game.
	WordLength = 5

	// NumGuesses is the number of guesses a player gets.
	NumGuesses = 6
)

var (
	// ErrUnknownWord is returned when an answer or guess is not in the Lexicon.
	ErrUnknownWord = errors.New("word not in dictionary")

	// ErrGuessLength is returned for a guess that is not WordLength long.
	ErrGuessLength = errors.New("guess has the wrong length")

	// ErrGameOver is returned for a guess after the last one.
	ErrGameOver = errors.New("no guesses left")

	// ErrBadShareCode is returned by ParseShareCode for a code it cannot read.
	ErrBadShareCode = errors.New("invalid share code")
)

// Status is the colour a letter gets after a guess.
type Status int

const (
	Unknown Status = iota // not guessed yet
	Gray                  // not in the answer
	Yellow                // in the answer, somewhere else
	Green                 // in the answer at this position
)

func (s Status) String() string {
	switch s {
	case Gray:
		return "gray"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	}
	return ""
}

// Score colours each letter of a guess against the answer. Letters are
// compared without case. Every letter that is in the answer but not at its
// position is Yellow, however many times it appears in either word.
func Score(guess, answer string) []Status {
	g := []rune(strings.ToLower(guess))
	a := []rune(strings.ToLower(answer))

	result := make([]Status, len(g))
	for i, letter := range g {
		switch {
		case i < len(a) && a[i] == letter:
			result[i] = Green
		case containsRune(a, letter):
			result[i] = Yellow
		default:
			result[i] = Gray
		}
	}
	return result
}

func containsRune(runes []rune, r rune) bool {
	for _, c := range runes {
		if c == r {
			return true
		}
	}
	return false
}

// Keyboard holds the best colour seen so far for each letter, keyed in lower
// case. Letters never guessed are absent and read as Unknown.
type Keyboard map[rune]Status

// MergeKeyboard updates the keyboard with one guess. Green is never
// downgraded, Yellow overrides anything but Green, and Gray is only set on a
// letter that has no colour yet.
func MergeKeyboard(keys Keyboard, guess, answer string) {
	g := []rune(strings.ToLower(guess))
	a := []rune(strings.ToLower(answer))

	for i, letter := range g {
		switch {
		case i < len(a) && a[i] == letter:
			keys[letter] = Green
		case containsRune(a, letter) && keys[letter] != Green:
			keys[letter] = Yellow
		case keys[letter] == Unknown:
			keys[letter] = Gray
		}
	}
}

// ShareCode encodes an answer the way the game puts it in a link: the base64
// of the query "word=<answer in lower case>".
func ShareCode(answer string) string {
	return base64.StdEncoding.EncodeToString([]byte("word=" + strings.ToLower(answer)))
}

// ParseShareCode returns the answer from a code made by ShareCode. A leading
// '?' is ignored.
func ParseShareCode(code string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(code, "?"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadShareCode, err)
	}

	query, err := url.ParseQuery(string(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadShareCode, err)
	}

	word := query.Get("word")
	if word == "" {
		return "", fmt.Errorf("%w: no word", ErrBadShareCode)
	}
	return word, nil
}

// ShareCode checks that the answer is a WordLength word in the lexicon and
// returns its share code.
func (lex *Lexicon) ShareCode(answer string) (string, error) {
	if utf8.RuneCountInString(answer) != WordLength || !lex.Has(answer) {
		return "", fmt.Errorf("%w: %q", ErrUnknownWord, answer)
	}
	return ShareCode(answer), nil
}

// Game is one round: an answer, the guesses made so far and the keyboard.
type Game struct {
	Answer   string
	Guesses  []string
	Keyboard Keyboard

	lex *Lexicon
}

// NewGame starts a game. Guesses are checked against lex.
func NewGame(lex *Lexicon, answer string) *Game {
	return &Game{
		Answer:   strings.ToLower(answer),
		Keyboard: Keyboard{},
		lex:      lex,
	}
}

// Guess submits a guess. It must be WordLength letters long and in the
// lexicon; a rejected guess does not use up a turn.
func (g *Game) Guess(guess string) ([]Status, error) {
	if len(g.Guesses) >= NumGuesses {
		return nil, ErrGameOver
	}
	if n := utf8.RuneCountInString(guess); n != WordLength {
		return nil, fmt.Errorf("%w: %q has %d letters, want %d", ErrGuessLength, guess, n, WordLength)
	}
	if !g.lex.Has(guess) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, guess)
	}

	guess = strings.ToLower(guess)
	g.Guesses = append(g.Guesses, guess)
	MergeKeyboard(g.Keyboard, guess, g.Answer)
	return Score(guess, g.Answer), nil
}

// Solved reports whether the last guess was the answer.
func (g *Game) Solved() bool {
	return len(g.Guesses) > 0 && g.Guesses[len(g.Guesses)-1] == g.Answer
}

// Over reports whether the game is solved or out of guesses.
func (g *Game) Over() bool {
	return g.Solved() || len(g.Guesses) >= NumGuesses
}

