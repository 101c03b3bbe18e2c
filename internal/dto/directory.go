package dto

// SelectionOptions are the choices available for a partially completed
// bank, state, branch selection.
type SelectionOptions struct {
	States           []string `json:"states"`
	Branches         []string `json:"branches"`
	FilteredBranches []string `json:"filteredBranches"`
}

// SelectionResponse is the normalised selection after the reset rules ran,
// together with what can be picked next.
type SelectionResponse struct {
	Bank        string           `json:"bank"`
	State       string           `json:"state"`
	Branch      string           `json:"branch"`
	BranchQuery string           `json:"branchQuery"`
	Complete    bool             `json:"complete"`
	Options     SelectionOptions `json:"options"`
}

type StatesResponse struct {
	Bank   string   `json:"bank"`
	States []string `json:"states"`
}

type BranchesResponse struct {
	Bank     string   `json:"bank"`
	State    string   `json:"state"`
	Query    string   `json:"query,omitempty"`
	Branches []string `json:"branches"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
