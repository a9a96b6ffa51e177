package pagination

// OffsetRequest represents a skip/limit pagination request
type OffsetRequest struct {
	Skip  int `json:"skip" query:"skip" validate:"min=0"`
	Limit int `json:"limit" query:"limit" validate:"min=1"`
}

// Normalize clamps skip/limit into valid ranges, applying the given
// default and maximum when limit is unset or out of bounds.
func (r *OffsetRequest) Normalize(defaultLimit, maxLimit int) {
	if r.Skip < 0 {
		r.Skip = 0
	}
	if r.Limit <= 0 {
		r.Limit = defaultLimit
	}
	if r.Limit > maxLimit {
		r.Limit = maxLimit
	}
}
