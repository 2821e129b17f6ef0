package engine

import (
	"fmt"
	"strings"
)

// Result is the outcome of a single match from one team's perspective
type Result int

const (
	Loss Result = -1
	Draw Result = 0
	Win  Result = 1
)

// String returns the single letter notation for a result
func (r Result) String() string {
	switch r {
	case Win:
		return "W"
	case Draw:
		return "D"
	case Loss:
		return "L"
	default:
		return "?"
	}
}

// ParseForm parses a form string such as "WWDLL" (most recent first) into
// a sequence of results. Lower case letters are accepted.
func ParseForm(form string) ([]Result, error) {
	if form == "" {
		return nil, nil
	}
	results := make([]Result, 0, len(form))
	for _, c := range strings.ToUpper(form) {
		switch c {
		case 'W':
			results = append(results, Win)
		case 'D':
			results = append(results, Draw)
		case 'L':
			results = append(results, Loss)
		default:
			return nil, fmt.Errorf("invalid form character: %c", c)
		}
	}
	return results, nil
}

// FormScore maps a sequence of recent results to a momentum scalar in [-1, 1].
// Wins count +1, losses -1 and draws 0; the score is the arithmetic mean, so
// result order does not matter. A nil or empty sequence scores 0.0, modelling
// a new season with no history. 1.0 is only reachable by an unbeaten all-win
// run, -1.0 only by an all-loss one.
func FormScore(results []Result) float64 {
	if len(results) == 0 {
		return 0.0
	}

	sum := 0
	for _, r := range results {
		switch r {
		case Win:
			sum++
		case Loss:
			sum--
		}
	}

	return float64(sum) / float64(len(results))
}

/////////////////////////////////////////////////////////////////////////
////// Form Encoding Functions (Following PODDS Methodology)
/////////////////////////////////////////////////////////////////////////

// formWindow is the number of recent results retained in an encoded form value
const formWindow = 5

// formDigit returns the quaternary digit for a result (3 win, 2 draw, 1 loss)
// and false for values outside the Result domain
func formDigit(r Result) (int, bool) {
	switch r {
	case Win:
		return 3, true
	case Draw:
		return 2, true
	case Loss:
		return 1, true
	default:
		return 0, false
	}
}

// UpdateFormData folds a new result into an encoded form value
// Form is stored as a base-4 integer, most recent result first, keeping a
// rolling window of the last five results
// A value outside the Result domain leaves the encoded form unchanged
// rather than being scored as a defeat
func UpdateFormData(previousForm int, result Result) int {
	digit, ok := formDigit(result)
	if !ok {
		return previousForm
	}

	// Convert previous form from decimal to quaternary (base-4)
	s := Quaternary(previousForm)

	// Add new result to the front (most recent)
	s = fmt.Sprintf("%d%s", digit, s)

	// Keep only the rolling window
	if len(s) > formWindow {
		s = s[:formWindow]
	}

	// Convert back to decimal for storage
	ret := 0
	multiplier := 1
	for i := len(s) - 1; i >= 0; i-- {
		digit := int(s[i] - '0')
		ret += digit * multiplier
		multiplier *= 4
	}

	return ret
}

// Quaternary converts decimal to quaternary (base-4) string
func Quaternary(n int) string {
	if n == 0 {
		return "0"
	}

	var nums []string
	for n > 0 {
		remainder := n % 4
		nums = append([]string{fmt.Sprintf("%d", remainder)}, nums...)
		n = n / 4
	}

	return strings.Join(nums, "")
}

// DecodeForm expands an encoded form value back into a result sequence,
// most recent first. Zero digits are padding from short histories and are
// skipped, so a freshly promoted side decodes to an empty sequence.
func DecodeForm(form int) []Result {
	if form <= 0 {
		return nil
	}

	var results []Result
	for _, c := range Quaternary(form) {
		switch c {
		case '3':
			results = append(results, Win)
		case '2':
			results = append(results, Draw)
		case '1':
			results = append(results, Loss)
		}
	}
	return results
}

// BlendedStrength folds a form score into a raw strength value using the
// configured form/stats weighting. With a neutral score the strength is
// unchanged; a perfect winning run lifts it by FormWeight and a losing run
// suppresses it by the same share. The result is clamped to [0, 100].
func BlendedStrength(strength, formScore float64) float64 {
	blended := GetStatsWeight()*strength + GetFormWeight()*(1.0+formScore)*strength

	if blended < 0 {
		return 0
	}
	if blended > 100 {
		return 100
	}
	return blended
}
