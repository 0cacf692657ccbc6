// Package network scores how useful a personal-network contact is for
// reaching a target company or opportunity.
package network

import (
	"math"
	"strings"

	"github.com/alexr/huntboard/internal/types"
)

// Company-similarity score ladder.
const (
	scoreExactMatch    = 100
	scoreContainsMatch = 80
	scoreStrongOverlap = 60
	scoreWeakOverlap   = 35
)

// Hiring-signal boosts and relationship-strength scaling. Company match
// dominates the final score (up to 75 of 100 points); these only refine
// ranking among already-relevant contacts.
const (
	companyWeight      = 0.75
	hiringSignalBoost  = 10
	hiringTitleBoost   = 6
	recruiterTagBoost  = 6
	hiringTagBoost     = 6
	referralTagBoost   = 4
	strengthPerLevel   = 2.5
	defaultStrength    = 3
	minStrength        = 1
	maxStrength        = 5
)

// orgSuffixes are legal/organizational suffixes stripped during company-name
// normalization. Word-boundary only, so "Cole" keeps its "co".
var orgSuffixes = map[string]struct{}{
	"inc": {}, "llc": {}, "ltd": {}, "corp": {},
	"corporation": {}, "company": {}, "co": {},
}

// hiringTitleNeedles mark job titles that suggest involvement in hiring.
var hiringTitleNeedles = []string{
	"recruit", "talent", "people ops", "hr", "human resources", "hiring manager",
}

// NormalizeOrgName canonicalizes a company name for comparison: lower-case,
// punctuation stripped, legal suffixes removed, whitespace collapsed. Never
// used for display.
func NormalizeOrgName(s string) string {
	lower := strings.ToLower(s)
	var sb strings.Builder
	sb.Grow(len(lower))
	for _, r := range lower {
		switch r {
		case ',', '.', '\'', '"', '(', ')':
		default:
			sb.WriteRune(r)
		}
	}
	words := strings.Fields(sb.String())
	kept := words[:0]
	for _, w := range words {
		if _, suffix := orgSuffixes[w]; suffix {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// ScoreContactForCompany scores organization-name similarity on a fixed
// ladder: 100 exact, 80 containment, 60 for two or more shared tokens, 35
// for one, 0 otherwise. Empty names score 0.
func ScoreContactForCompany(contactCompany, targetCompany string) int {
	c := NormalizeOrgName(contactCompany)
	t := NormalizeOrgName(targetCompany)
	if c == "" || t == "" {
		return 0
	}
	if c == t {
		return scoreExactMatch
	}
	if strings.Contains(c, t) || strings.Contains(t, c) {
		return scoreContainsMatch
	}

	ct := strings.Fields(c)
	tt := make(map[string]struct{})
	for _, w := range strings.Fields(t) {
		tt[w] = struct{}{}
	}
	overlap := 0
	seen := make(map[string]struct{}, len(ct))
	for _, w := range ct {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if _, ok := tt[w]; ok {
			overlap++
		}
	}
	switch {
	case overlap >= 2:
		return scoreStrongOverlap
	case overlap == 1:
		return scoreWeakOverlap
	}
	return 0
}

func hasHiringTitle(title string) bool {
	if title == "" {
		return false
	}
	t := strings.ToLower(title)
	for _, needle := range hiringTitleNeedles {
		if strings.Contains(t, needle) {
			return true
		}
	}
	return false
}

// hasTag reports whether the comma-separated tags contain needle as an exact
// token, case-insensitively.
func hasTag(tags, needle string) bool {
	if tags == "" {
		return false
	}
	needle = strings.ToLower(needle)
	for _, tag := range strings.Split(tags, ",") {
		if strings.ToLower(strings.TrimSpace(tag)) == needle {
			return true
		}
	}
	return false
}

// ScoreContactForOpportunity scores a contact's usefulness for a target
// company. Company similarity contributes up to 75 points; hiring signals
// and relationship strength refine the ordering. A contact at an unrelated
// company cannot reach a high score regardless of signals.
func ScoreContactForOpportunity(contact types.Contact, targetCompany string) int {
	companyScore := ScoreContactForCompany(contact.Company, targetCompany)

	strength := defaultStrength
	if contact.Strength != nil {
		strength = *contact.Strength
	}
	if strength < minStrength {
		strength = minStrength
	}
	if strength > maxStrength {
		strength = maxStrength
	}
	strengthScore := float64(strength-1) * strengthPerLevel // 0..10

	hiringBoost := 0
	if contact.HiringSignal {
		hiringBoost += hiringSignalBoost
	}
	if hasHiringTitle(contact.Title) {
		hiringBoost += hiringTitleBoost
	}
	if hasTag(contact.Tags, "recruiter") {
		hiringBoost += recruiterTagBoost
	}
	if hasTag(contact.Tags, "hiring") {
		hiringBoost += hiringTagBoost
	}
	if hasTag(contact.Tags, "referral") {
		hiringBoost += referralTagBoost
	}

	score := math.Round(float64(companyScore)*companyWeight + float64(hiringBoost) + strengthScore)
	return int(math.Min(100, score))
}
