package api

type Stakeholder struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type ListStakeholdersRequest struct{}

type ListStakeholdersResponse struct {
	Stakeholders []Stakeholder `json:"stakeholders"`
}

type GetStakeholderRequest struct {
	ID int64 `json:"id"`
}

// GetStakeholderResponse carries the stakeholder's payment history, newest first.
type GetStakeholderResponse struct {
	Stakeholder Stakeholder `json:"stakeholder"`
	Payments    []Payment   `json:"payments"`
}

// CreateStakeholderRequest creates an active stakeholder unless Active is
// explicitly false.
type CreateStakeholderRequest struct {
	Name   string `json:"name"`
	Active *bool  `json:"active,omitempty"`
}

type CreateStakeholderResponse struct {
	Stakeholder Stakeholder `json:"stakeholder"`
}

type UpdateStakeholderRequest struct {
	ID     int64   `json:"id"`
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type UpdateStakeholderResponse struct {
	Stakeholder Stakeholder `json:"stakeholder"`
}

type DeleteStakeholderRequest struct {
	ID int64 `json:"id"`
}

type DeleteStakeholderResponse struct {
	Success bool `json:"success"`
}
