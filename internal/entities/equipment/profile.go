package equipment

// ScoringWeights are the per-stat multipliers of the linear scoring
// function. All weights are non-negative.
type ScoringWeights struct {
	AttackPoints   int `json:"attack_points"`
	VitalityPoints int `json:"vitality_points"`
	HealthPoints   int `json:"health_points"`
	ManaPoints     int `json:"mana_points"`
}

// UnitProfile describes the unit a set is calculated for: its carrying
// capacity, elemental affinity, ranged capability, forge level, the
// ranged policy, the optional target elements and the scoring weights.
//
// RangedRequired and RangedForbidden are mutually exclusive, and
// RangedRequired implies Ranged. The search rejects profiles that
// violate either rule.
type UnitProfile struct {
	CarryWeight     int            `json:"carry_weight"`
	Element         Element        `json:"element"`
	Ranged          bool           `json:"ranged"`
	ForgeLevel      int            `json:"forge_level"`
	RangedRequired  bool           `json:"ranged_required"`
	RangedForbidden bool           `json:"ranged_forbidden"`
	AttackElement   Element        `json:"attack_element,omitempty"`
	DefenseElement  Element        `json:"defense_element,omitempty"`
	Weights         ScoringWeights `json:"weights"`
}
