package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

type applicantListCacheKeyInput struct {
	Search    string `json:"search"`
	Status    string `json:"status"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	Page      int    `json:"page"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// ApplicantListCacheKey hashes the normalized filter state under the job's
// key prefix so a mutation can invalidate every cached page of one job with
// a single pattern delete.
func ApplicantListCacheKey(p ApplicantListParams) string {
	in := applicantListCacheKeyInput{
		Search:    normalizeCacheValue(p.Search),
		Status:    normalizeCacheValue(p.Status),
		SortBy:    string(p.SortBy),
		SortOrder: string(p.SortOrder),
		Page:      p.Page,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return fmt.Sprintf("applicants:list:%s:%s", p.JobID, hex.EncodeToString(sum[:]))
}

// ApplicantListLockKey derives the single-flight lock key for a cache key.
func ApplicantListLockKey(cacheKey string) string {
	return "applicants:lock:" + strings.TrimPrefix(cacheKey, "applicants:list:")
}

// ApplicantListInvalidationPattern matches every cached list page of a job.
func ApplicantListInvalidationPattern(jobID fmt.Stringer) string {
	return "applicants:list:" + jobID.String() + ":*"
}

// BulkActionLockKey guards against concurrent bulk actions from the same
// employer on the same job.
func BulkActionLockKey(employerID, jobID fmt.Stringer) string {
	return "applicants:bulk:lock:" + employerID.String() + ":" + jobID.String()
}
