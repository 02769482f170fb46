package matching

import (
	"math"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fallback scores used when a comparator lacks data or finds no match.
const (
	NeutralScore = 0.5

	SalaryOpenRangeFactor = 1.5
	SalaryRangeFraction   = 0.3

	LocationNearScore     = 0.7
	LocationMismatchScore = 0.2
	remoteKeyword         = "remote"

	PartialSkillCredit   = 0.5
	partialSkillMinRunes = 4

	ExperienceMissingScore       = 0.7
	ExperienceOverqualifiedStep  = 0.05
	ExperienceOverqualifiedMin   = 0.8
	ExperienceUnderqualifiedStep = 0.15

	JobTypeMismatchScore  = 0.3
	IndustryMismatchScore = 0.5
)

// SalaryMatch compares the seeker's salary band with the job's. A nil
// minimum on either side yields NeutralScore.
func SalaryMatch(seekerMin, seekerMax, jobMin, jobMax *float64) float64 {
	if seekerMin == nil || jobMin == nil {
		return NeutralScore
	}
	sMin, jMin := *seekerMin, *jobMin

	if jMin >= sMin && (seekerMax == nil || jMin <= *seekerMax) {
		return 1
	}

	seekerRange := sMin * SalaryRangeFraction
	seekerEnd := sMin * SalaryOpenRangeFactor
	if seekerMax != nil {
		seekerRange = *seekerMax - sMin
		seekerEnd = *seekerMax
	}
	jobRange := jMin * SalaryRangeFraction
	jobEnd := jMin * SalaryOpenRangeFactor
	if jobMax != nil {
		jobRange = *jobMax - jMin
		jobEnd = *jobMax
	}

	overlapStart := math.Max(sMin, jMin)
	overlapEnd := math.Min(seekerEnd, jobEnd)
	if overlapStart <= overlapEnd {
		avg := (seekerRange + jobRange) / 2
		if avg <= 0 {
			return 1
		}
		return clamp01((overlapEnd - overlapStart) / avg)
	}

	denom := math.Max(sMin, jMin)
	if denom <= 0 {
		return 0
	}
	return clamp01(1 - math.Abs(sMin-jMin)/denom)
}

// LocationMatch scores a free-text job location against the seeker's
// desired locations.
func LocationMatch(desired []string, jobLocation string) float64 {
	job := strings.ToLower(strings.TrimSpace(jobLocation))
	wanted := normalizeList(desired)
	if len(wanted) == 0 || job == "" {
		return NeutralScore
	}

	for _, loc := range wanted {
		if containsEither(loc, job) {
			return 1
		}
	}

	if strings.Contains(job, remoteKeyword) && slices.ContainsFunc(wanted, func(loc string) bool {
		return strings.Contains(loc, remoteKeyword)
	}) {
		return 1
	}

	jobTokens := locationTokens(job)
	for _, loc := range wanted {
		for _, dt := range locationTokens(loc) {
			for _, jt := range jobTokens {
				if containsEither(dt, jt) {
					return LocationNearScore
				}
			}
		}
	}

	return LocationMismatchScore
}

// SkillsMatch returns the share of required skills covered by the seeker.
// Whole-skill substring hits count fully, shared words of four or more
// characters count as PartialSkillCredit. Blank required entries are not
// counted.
func SkillsMatch(seekerSkills, requiredSkills []string) float64 {
	required := normalizeList(requiredSkills)
	if len(required) == 0 {
		return NeutralScore
	}

	have := normalizeList(seekerSkills)
	var full, partial int
	for _, req := range required {
		if slices.ContainsFunc(have, func(s string) bool { return containsEither(s, req) }) {
			full++
			continue
		}
		if slices.ContainsFunc(have, func(s string) bool { return sharesLongWord(s, req) }) {
			partial++
		}
	}

	total := float64(full) + PartialSkillCredit*float64(partial)
	return math.Min(1, total/float64(len(required)))
}

// ExperienceMatch penalises under-qualification linearly and
// over-qualification lightly.
func ExperienceMatch(seekerYears, requiredYears *int) float64 {
	if seekerYears == nil || requiredYears == nil {
		return ExperienceMissingScore
	}
	have, need := *seekerYears, *requiredYears
	if have >= need {
		over := float64(have - need)
		return math.Max(ExperienceOverqualifiedMin, 1-ExperienceOverqualifiedStep*over)
	}
	gap := float64(need - have)
	return math.Max(0, 1-ExperienceUnderqualifiedStep*gap)
}

// ArrayMatch returns the fraction of prefs that relate, by case-insensitive
// substring, to at least one of attrs.
func ArrayMatch(prefs, attrs []string) float64 {
	p := normalizeList(prefs)
	a := normalizeList(attrs)
	if len(p) == 0 || len(a) == 0 {
		return NeutralScore
	}

	matched := 0
	for _, pref := range p {
		if slices.ContainsFunc(a, func(attr string) bool { return containsEither(attr, pref) }) {
			matched++
		}
	}
	return float64(matched) / float64(max(len(p), 1))
}

func JobTypeMatch(accepted []string, jobType string) float64 {
	if slices.Contains(accepted, jobType) {
		return 1
	}
	return JobTypeMismatchScore
}

func IndustryMatch(accepted []string, industry *string) float64 {
	v := ""
	if industry != nil {
		v = *industry
	}
	if slices.Contains(accepted, v) {
		return 1
	}
	return IndustryMismatchScore
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func locationTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func sharesLongWord(a, b string) bool {
	for _, w1 := range strings.Fields(a) {
		if utf8.RuneCountInString(w1) < partialSkillMinRunes {
			continue
		}
		for _, w2 := range strings.Fields(b) {
			if utf8.RuneCountInString(w2) < partialSkillMinRunes {
				continue
			}
			if containsEither(w1, w2) {
				return true
			}
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
