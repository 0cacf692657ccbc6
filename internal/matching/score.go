// Package matching computes explainable fit scores between a candidate and a
// job posting.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/alexr/huntboard/internal/text"
	"github.com/alexr/huntboard/internal/types"
)

// Scoring weights. Skill coverage dominates; title and work-mode preference
// matches add fixed bonuses.
const (
	skillCoverageWeight = 65
	titleBonusWeight    = 20
	workModeBonusWeight = 15

	// maxSkillsInNotes caps how many matched skill names are listed in the
	// human-readable notes.
	maxSkillsInNotes = 12
)

// MatchResult explains how well a candidate fits a job posting.
type MatchResult struct {
	Score         int      `json:"score"` // 0..100
	MatchedSkills []string `json:"matched_skills"`
	Notes         string   `json:"notes"`
}

func clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}

// parseCSV splits a comma-separated list, trimming entries and dropping
// blanks.
func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// titleBonus returns 1 when any desired title is a case-insensitive
// substring of the job title.
func titleBonus(profile *types.Profile, jobTitle string) float64 {
	if profile == nil || profile.DesiredTitles == "" {
		return 0
	}
	desired := parseCSV(profile.DesiredTitles)
	if len(desired) == 0 {
		return 0
	}
	jt := strings.ToLower(jobTitle)
	for _, t := range desired {
		if strings.Contains(jt, strings.ToLower(t)) {
			return 1
		}
	}
	return 0
}

// workModeBonus returns 1 when the job's work mode is among the profile's
// desired modes.
func workModeBonus(profile *types.Profile, jobMode types.WorkMode) float64 {
	if profile == nil || jobMode == "" {
		return 0
	}
	desired := parseCSV(profile.DesiredWorkModes)
	if len(desired) == 0 {
		return 0
	}
	mode := strings.ToUpper(string(jobMode))
	for _, d := range desired {
		if strings.ToUpper(d) == mode {
			return 1
		}
	}
	return 0
}

// ComputeMatchScore scores how well the candidate's skills and preferences
// align with a job posting. A nil profile still allows full skill-based
// scoring; the preference bonuses simply contribute zero.
//
// Skill names are matched as normalized substrings of the combined job text.
// Names are scanned longest-first so that a more specific term ("JavaScript")
// is evaluated before a shorter one it contains ("Java"); each containment
// check is independent, so both are recorded when both are textually present.
// Matched names are reported exactly as the candidate stored them.
func ComputeMatchScore(profile *types.Profile, skills []types.Skill, job *types.Job) MatchResult {
	jobText := strings.TrimSpace(job.Title + "\n" + job.Requirements + "\n" + job.Description)

	skillNames := make([]string, 0, len(skills))
	for _, s := range skills {
		if name := strings.TrimSpace(s.Name); name != "" {
			skillNames = append(skillNames, name)
		}
	}
	sort.SliceStable(skillNames, func(i, j int) bool {
		return len(skillNames[i]) > len(skillNames[j])
	})

	matched := make([]string, 0, len(skillNames))
	for _, name := range skillNames {
		if text.IncludesPhrase(jobText, name) {
			matched = append(matched, name)
		}
	}

	skillCoverage := 0.0
	if len(skillNames) > 0 {
		skillCoverage = float64(len(matched)) / float64(len(skillNames))
	}
	prefTitle := titleBonus(profile, job.Title)
	prefWorkMode := workModeBonus(profile, job.WorkMode)

	score := skillCoverageWeight*clamp(skillCoverage, 0, 1) +
		titleBonusWeight*prefTitle +
		workModeBonusWeight*prefWorkMode

	var notes []string
	if len(matched) > 0 {
		shown := matched
		if len(shown) > maxSkillsInNotes {
			shown = shown[:maxSkillsInNotes]
		}
		notes = append(notes, "Matched skills: "+strings.Join(shown, ", ")+".")
	}
	if len(skillNames) == 0 {
		notes = append(notes, "Add skills in Profile to improve scoring.")
	}
	if prefTitle > 0 {
		notes = append(notes, "Title aligns with your target titles.")
	}
	if prefWorkMode > 0 {
		notes = append(notes, "Work mode matches your preference.")
	}

	return MatchResult{
		Score:         int(math.Round(clamp(score, 0, 100))),
		MatchedSkills: matched,
		Notes:         strings.Join(notes, " "),
	}
}
