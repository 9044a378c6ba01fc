package unit_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/service"
)

func openReport(caseNumber, name string, color *string) domain.LostItem {
	return domain.LostItem{
		CaseNumber: caseNumber,
		UserID:     uuid.New(),
		ItemName:   name,
		ItemColor:  color,
		Status:     domain.LostStatusReported,
	}
}

func TestFindCandidates_SubstringDirection(t *testing.T) {
	found := domain.FoundItem{
		ID:        "FI20260001",
		ItemName:  "Black Leather Bag",
		ItemColor: "Black",
		Status:    domain.FoundStatusFound,
	}

	t.Run("report name inside found name matches", func(t *testing.T) {
		reports := []domain.LostItem{openReport("CU20260001", "Bag", stringPtr("black"))}

		candidates := service.FindCandidates(found, reports)

		assert.Len(t, candidates, 1)
		assert.Equal(t, "CU20260001", candidates[0].Report.CaseNumber)
		assert.Equal(t, "FI20260001", candidates[0].FoundItemID)
	})

	t.Run("report name longer than found name never matches", func(t *testing.T) {
		shortFound := domain.FoundItem{
			ID:        "FI20260002",
			ItemName:  "Bag",
			ItemColor: "Black",
		}
		reports := []domain.LostItem{openReport("CU20260002", "Black Leather Bag", stringPtr("Black"))}

		candidates := service.FindCandidates(shortFound, reports)

		assert.Empty(t, candidates)
	})

	t.Run("name comparison is case-insensitive", func(t *testing.T) {
		reports := []domain.LostItem{openReport("CU20260003", "bAg", stringPtr("BLACK"))}

		candidates := service.FindCandidates(found, reports)

		assert.Len(t, candidates, 1)
	})
}

func TestFindCandidates_ColorRule(t *testing.T) {
	t.Run("empty found color yields no candidates", func(t *testing.T) {
		found := domain.FoundItem{ID: "FI20260010", ItemName: "Bag", ItemColor: ""}
		reports := []domain.LostItem{openReport("CU20260010", "Bag", stringPtr(""))}

		candidates := service.FindCandidates(found, reports)

		assert.Empty(t, candidates, "two empty colors must not match vacuously")
	})

	t.Run("whitespace-only found color yields no candidates", func(t *testing.T) {
		found := domain.FoundItem{ID: "FI20260011", ItemName: "Bag", ItemColor: "   "}
		reports := []domain.LostItem{openReport("CU20260011", "Bag", stringPtr("Black"))}

		candidates := service.FindCandidates(found, reports)

		assert.Empty(t, candidates)
	})

	t.Run("nil report color is skipped", func(t *testing.T) {
		found := domain.FoundItem{ID: "FI20260012", ItemName: "Bag", ItemColor: "Black"}
		reports := []domain.LostItem{openReport("CU20260012", "Bag", nil)}

		candidates := service.FindCandidates(found, reports)

		assert.Empty(t, candidates)
	})

	t.Run("different colors do not match", func(t *testing.T) {
		found := domain.FoundItem{ID: "FI20260013", ItemName: "Bag", ItemColor: "Black"}
		reports := []domain.LostItem{openReport("CU20260013", "Bag", stringPtr("Brown"))}

		candidates := service.FindCandidates(found, reports)

		assert.Empty(t, candidates)
	})

	t.Run("color comparison is case-insensitive", func(t *testing.T) {
		found := domain.FoundItem{ID: "FI20260014", ItemName: "Bag", ItemColor: "BLACK"}
		reports := []domain.LostItem{openReport("CU20260014", "Bag", stringPtr("black"))}

		candidates := service.FindCandidates(found, reports)

		assert.Len(t, candidates, 1)
	})
}

func TestFindCandidates_MultipleHits(t *testing.T) {
	found := domain.FoundItem{
		ID:        "FI20260020",
		ItemName:  "Blue Water Bottle",
		ItemColor: "Blue",
	}

	reports := []domain.LostItem{
		openReport("CU20260020", "Bottle", stringPtr("Blue")),
		openReport("CU20260021", "Water Bottle", stringPtr("blue")),
		openReport("CU20260022", "Bottle", stringPtr("Red")),
		openReport("CU20260023", "Umbrella", stringPtr("Blue")),
	}

	candidates := service.FindCandidates(found, reports)

	assert.Len(t, candidates, 2, "every qualifying report becomes a candidate")
	assert.Equal(t, "CU20260020", candidates[0].Report.CaseNumber)
	assert.Equal(t, "CU20260021", candidates[1].Report.CaseNumber, "input order is preserved")
}

func TestFindCandidates_SkipsNonOpenReports(t *testing.T) {
	found := domain.FoundItem{
		ID:        "FI20260030",
		ItemName:  "Bag",
		ItemColor: "Black",
	}

	matched := openReport("CU20260030", "Bag", stringPtr("Black"))
	matched.Status = domain.LostStatusMatched
	claimed := openReport("CU20260031", "Bag", stringPtr("Black"))
	claimed.Status = domain.LostStatusClaimed

	candidates := service.FindCandidates(found, []domain.LostItem{matched, claimed})

	assert.Empty(t, candidates)
}

func stringPtr(s string) *string {
	return &s
}
