package derivedform

import (
	"strings"
	"time"
)

const periodLayout = "2006-01"

// RuleResult carries the outcome of the period-key rules. DuplicateKey
// and FutureKey are hard constraints for new drafts; YearMismatch is a
// soft warning shown to the user but never blocking on its own.
type RuleResult struct {
	DuplicateKey bool
	YearMismatch bool
	FutureKey    bool
}

// Validate runs the period-key rules for the draft's key field against
// the keys of the existing records. Duplicate and year checks apply to
// new drafts only: an edited record keeps its key, so matching itself
// is not a conflict. Future comparison happens at month granularity.
func (f *Form) Validate(existingKeys []string, contextYear int, now time.Time) RuleResult {
	return validatePeriodKey(f.Field(f.cfg.KeyField), f.IsEdit(), existingKeys, contextYear, now)
}

func validatePeriodKey(key string, isEdit bool, existingKeys []string, contextYear int, now time.Time) RuleResult {
	var res RuleResult

	normalized := normalizeKey(key)
	period, err := time.Parse(periodLayout, normalized)
	if err != nil {
		return res
	}

	if !isEdit {
		for _, existing := range existingKeys {
			if normalizeKey(existing) == normalized {
				res.DuplicateKey = true
				break
			}
		}
		res.YearMismatch = period.Year() != contextYear
	}

	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	res.FutureKey = period.After(current)
	return res
}

// CanSubmit implements the observed blocking asymmetry: creating a
// record is blocked by a duplicate or future key, while a year
// mismatch only warns. Edits are never blocked by these rules.
func CanSubmit(res RuleResult, isEdit bool) bool {
	if isEdit {
		return true
	}
	return !res.DuplicateKey && !res.FutureKey
}

func normalizeKey(key string) string {
	return strings.TrimSpace(key)
}
