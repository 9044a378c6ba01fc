package service

import (
	"strings"

	"campus-lostfound/internal/domain"
)

// FindCandidates scans open lost-item reports for matches against a newly
// logged found item. A report is a candidate when its item name is a
// case-insensitive substring of the found item's name (direction is fixed:
// a report name longer than the found name can never match) and both
// records carry the same non-empty color, compared case-insensitively.
// An empty found-item color produces no candidates; color equality is never
// satisfied vacuously.
//
// The scan preserves the order of openReports and does not stop at the
// first hit, so one found item can yield several candidates. The function
// is pure: it neither persists nor notifies.
func FindCandidates(found domain.FoundItem, openReports []domain.LostItem) []domain.MatchCandidate {
	foundColor := strings.TrimSpace(found.ItemColor)
	if foundColor == "" {
		return nil
	}

	foundName := strings.ToLower(found.ItemName)

	var candidates []domain.MatchCandidate
	for _, report := range openReports {
		if report.Status != domain.LostStatusReported {
			continue
		}
		if report.ItemColor == nil {
			continue
		}
		reportColor := strings.TrimSpace(*report.ItemColor)
		if reportColor == "" {
			continue
		}

		if !strings.Contains(foundName, strings.ToLower(report.ItemName)) {
			continue
		}
		if !strings.EqualFold(reportColor, foundColor) {
			continue
		}

		candidates = append(candidates, domain.MatchCandidate{
			FoundItemID: found.ID,
			Report:      report,
		})
	}

	return candidates
}
