package response

import "beneficios_inss/internal/domain/entities"

type BenefitResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

func FromBenefit(b entities.Benefit) BenefitResponse {
	reqs := make([]string, len(b.Requirements))
	copy(reqs, b.Requirements)
	return BenefitResponse{
		ID:           b.ID,
		Title:        b.Title,
		Category:     b.Category,
		Description:  b.Description,
		Requirements: reqs,
	}
}

func FromBenefits(list []entities.Benefit) []BenefitResponse {
	out := make([]BenefitResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBenefit(b))
	}
	return out
}

type RecommendationResponse struct {
	RecommendedBenefits string `json:"recommended_benefits"`
}

// StatusOption is one entry of the caseworker status picker.
type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func StatusOptions() []StatusOption {
	all := entities.AllRequestStatuses()
	out := make([]StatusOption, 0, len(all))
	for _, s := range all {
		out = append(out, StatusOption{Value: string(s), Label: s.Label()})
	}
	return out
}
