package domain

// CreateInput creates an idea. The validation outcome fields are optional
// so callers can persist a result obtained from the validation endpoint
// in the same write
type CreateInput struct {
	Title           string   `json:"title" validate:"required,min=3,max=200" example:"Community solar kits"`
	Description     string   `json:"description" validate:"required,min=10,max=4000"`
	TargetMarket    string   `json:"target_market,omitempty" validate:"omitempty,max=200"`
	InnovationLevel string   `json:"innovation_level,omitempty" validate:"omitempty,oneof=incremental transformative disruptive"`
	Status          string   `json:"status,omitempty" validate:"omitempty,oneof=draft validating validated implementing"`
	ValidationScore *int     `json:"validation_score,omitempty" validate:"omitempty,min=0,max=100"`
	Risks           []string `json:"risks,omitempty" validate:"omitempty,max=5,dive,min=1"`
	Opportunities   []string `json:"opportunities,omitempty" validate:"omitempty,max=5,dive,min=1"`
	SDGAlignment    []int    `json:"sdg_alignment,omitempty" validate:"omitempty,max=17,dive,min=1,max=17"`
}

// UpdateInput patches an idea. Nil fields are left unchanged
type UpdateInput struct {
	Title           *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,min=10,max=4000"`
	TargetMarket    *string  `json:"target_market,omitempty" validate:"omitempty,max=200"`
	InnovationLevel *string  `json:"innovation_level,omitempty" validate:"omitempty,oneof=incremental transformative disruptive"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=draft validating validated implementing"`
	ValidationScore *int     `json:"validation_score,omitempty" validate:"omitempty,min=0,max=100"`
	Risks           []string `json:"risks,omitempty" validate:"omitempty,max=5,dive,min=1"`
	Opportunities   []string `json:"opportunities,omitempty" validate:"omitempty,max=5,dive,min=1"`
	SDGAlignment    []int    `json:"sdg_alignment,omitempty" validate:"omitempty,max=17,dive,min=1,max=17"`
}
