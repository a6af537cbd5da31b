package request_models

// PlanRequest is one form submission. Days is capped at 30 to keep the
// downstream enrichment pass (one geocoding round trip per activity) bounded.
type PlanRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days" binding:"required,min=1,max=30"`
	WithKids    bool   `json:"with_kids"`
	KidsAges    []int  `json:"kids_ages" binding:"omitempty,dive,min=0,max=18"`
}

// ChallengeAges returns the ages challenges should be generated for: empty
// unless the kids flag is set, regardless of what the client sent.
func (r PlanRequest) ChallengeAges() []int {
	if !r.WithKids {
		return nil
	}
	return r.KidsAges
}
