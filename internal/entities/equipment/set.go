package equipment

// EquipmentSet is the calculated result: exactly one piece per slot,
// any of which may be the sentinel. The sum of the five weights never
// exceeds the carry weight of the profile it was calculated for.
type EquipmentSet struct {
	Weapon    Equipment `json:"weapon"`
	Armor     Equipment `json:"armor"`
	Shield    Equipment `json:"shield"`
	Helmet    Equipment `json:"helmet"`
	Accessory Equipment `json:"accessory"`
}

// Pieces returns the five pieces in slot order.
func (s *EquipmentSet) Pieces() []Equipment {
	return []Equipment{s.Weapon, s.Armor, s.Shield, s.Helmet, s.Accessory}
}

// Elements returns the elements of the five pieces in slot order.
func (s *EquipmentSet) Elements() []Element {
	return []Element{s.Weapon.Element, s.Armor.Element, s.Shield.Element, s.Helmet.Element, s.Accessory.Element}
}

// TotalWeight is the summed weight of the five pieces.
func (s *EquipmentSet) TotalWeight() int {
	total := 0
	for _, p := range s.Pieces() {
		total += p.Weight
	}
	return total
}

// TotalAttackPoints is the summed attack points of the five pieces.
func (s *EquipmentSet) TotalAttackPoints() int {
	total := 0
	for _, p := range s.Pieces() {
		total += p.AttackPoints
	}
	return total
}

// TotalVitalityPoints is the summed vitality points of the five pieces.
func (s *EquipmentSet) TotalVitalityPoints() int {
	total := 0
	for _, p := range s.Pieces() {
		total += p.VitalityPoints
	}
	return total
}

// TotalHealthPoints is the summed health points of the five pieces.
func (s *EquipmentSet) TotalHealthPoints() int {
	total := 0
	for _, p := range s.Pieces() {
		total += p.HealthPoints
	}
	return total
}

// TotalManaPoints is the summed mana points of the five pieces.
func (s *EquipmentSet) TotalManaPoints() int {
	total := 0
	for _, p := range s.Pieces() {
		total += p.ManaPoints
	}
	return total
}

// Score evaluates the set under the given linear scoring weights.
func (s *EquipmentSet) Score(w ScoringWeights) int {
	return s.TotalAttackPoints()*w.AttackPoints +
		s.TotalVitalityPoints()*w.VitalityPoints +
		s.TotalHealthPoints()*w.HealthPoints +
		s.TotalManaPoints()*w.ManaPoints
}
