package services

import (
	"errors"
	"strings"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/technician"
)

// ErrNoEligibleTechnician is returned when no technician can receive an offer:
// either none were provided, none are verified, or every verified candidate is
// already excluded for the job.
var ErrNoEligibleTechnician = errors.New("no eligible technician found")

// TechnicianSelector is a domain service that picks which technician should
// receive the next offer for a job.
//
// Selection is a greedy heuristic, not an optimal assignment:
//   - only verified technicians are considered
//   - technicians in the exclusion set (anyone who ever held an offer for the
//     job, whatever its outcome) are skipped
//   - the highest average rating wins; equal ratings tie-break on ascending
//     technician id so the choice is stable across cycles
//
// Downstream behavior depends on this exact heuristic; do not replace it with
// a global matching algorithm.
type TechnicianSelector struct{}

// NewTechnicianSelector creates a new TechnicianSelector instance.
func NewTechnicianSelector() TechnicianSelector {
	return TechnicianSelector{}
}

// Select returns the best candidate for a new offer, or ErrNoEligibleTechnician
// when every candidate is unverified or excluded.
//
// Parameters:
//   - candidates: technicians to consider, in any order
//   - excluded: ids of technicians that already held an offer for the job
func (s TechnicianSelector) Select(
	candidates []*technician.Technician,
	excluded []kernel.UUID,
) (*technician.Technician, error) {
	excludedSet := make(map[string]struct{}, len(excluded))
	for _, id := range excluded {
		excludedSet[id.String()] = struct{}{}
	}

	var best *technician.Technician
	for _, t := range candidates {
		if err := t.Validate(); err != nil {
			return nil, err
		}

		if !t.IsVerified() {
			continue
		}
		if _, ok := excludedSet[t.ID().String()]; ok {
			continue
		}

		if best == nil || better(t, best) {
			best = t
		}
	}

	if best == nil {
		return nil, ErrNoEligibleTechnician
	}

	return best, nil
}

// better reports whether a should be preferred over b: higher rating first,
// then lower id for stability.
func better(a, b *technician.Technician) bool {
	if a.AverageRating() != b.AverageRating() {
		return a.AverageRating() > b.AverageRating()
	}
	return strings.Compare(a.ID().String(), b.ID().String()) < 0
}
