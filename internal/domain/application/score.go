package application

import (
	"math"
	"strings"
)

// MatchScore is the 0-100 overlap between an applicant's skills and the job's
// required skills. Replaces the old randomized placeholder so the score is
// stable across fetches and usable as a sort key.
func MatchScore(applicantSkills, requiredSkills []string) int {
	reqs := make(map[string]struct{}, len(requiredSkills))
	for _, s := range requiredSkills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		reqs[s] = struct{}{}
	}
	if len(reqs) == 0 {
		return 0
	}

	matched := 0
	seen := make(map[string]struct{}, len(applicantSkills))
	for _, s := range applicantSkills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := reqs[s]; ok {
			matched++
		}
	}

	score := int(math.Round(float64(matched) / float64(len(reqs)) * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
