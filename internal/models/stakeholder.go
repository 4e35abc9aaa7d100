package models

// Stakeholder is a party entitled to an equal share of each period's
// positive balance while active.
type Stakeholder struct {
	// ID is assigned by the store on creation.
	ID int64

	// Name is unique across all stakeholders.
	Name string `validate:"required,max=100"`

	// Active stakeholders take part in allocation. Inactive ones keep their
	// payment history but receive no shares.
	Active bool
}

// StakeholderUpdate carries the fields to change on an existing stakeholder.
type StakeholderUpdate struct {
	Name   *string
	Active *bool
}

// Apply copies the set fields of u onto s.
func (u StakeholderUpdate) Apply(s *Stakeholder) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Active != nil {
		s.Active = *u.Active
	}
}
