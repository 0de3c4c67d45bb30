package quiz

import (
	"math"
	"strconv"
	"strings"
)

// Evaluate grades a raw user submission against a question.
//
// Theory questions require exact equality with the correct option.
// Calculation answers are parsed with European conventions (comma decimal
// separator, embedded spaces ignored) and accepted when within the policy's
// tolerance of the ground truth. Unparseable input is present-but-incorrect;
// practice mode never reaches this path because it refuses to submit until
// the input parses (see ParseNumber).
func Evaluate(q Question, rawInput string, policy TolerancePolicy) bool {
	if q.Kind == KindTheory {
		return rawInput == q.AnswerText
	}

	parsed, err := ParseNumber(rawInput)
	if err != nil {
		return false
	}
	return math.Abs(parsed-q.Answer) <= policy.Tolerance(q.Answer)
}

// ParseNumber parses a numeric string, treating comma as the decimal
// separator and stripping whitespace (including the narrow spaces of French
// digit grouping).
func ParseNumber(raw string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ' ', ' ':
			return -1
		case ',':
			return '.'
		}
		return r
	}, raw)
	return strconv.ParseFloat(cleaned, 64)
}
