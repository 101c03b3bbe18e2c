package services

import (
	"context"
	"slices"

	"github.com/GregMSThompson/ifsc-finder/internal/directory"
	"github.com/GregMSThompson/ifsc-finder/internal/dto"
	"github.com/GregMSThompson/ifsc-finder/pkg/logger"
)

// Selection is the state behind the find-IFSC form. Changing a parent value
// clears everything that depends on it.
type Selection struct {
	Bank        string
	State       string
	Branch      string
	BranchQuery string
}

func (s *Selection) SelectBank(bank string) {
	if bank == s.Bank {
		return
	}
	s.Bank = bank
	s.State = ""
	s.Branch = ""
	s.BranchQuery = ""
}

func (s *Selection) SelectState(state string) {
	if state == s.State {
		return
	}
	s.State = state
	s.Branch = ""
	s.BranchQuery = ""
}

// SelectBranch also fills the search box with the chosen name.
func (s *Selection) SelectBranch(branch string) {
	s.Branch = branch
	s.BranchQuery = branch
}

// ChooseBranch selects branch only when it is one of the branches offered for
// the current bank and state. It reports whether the branch was taken.
func (s *Selection) ChooseBranch(branch string) bool {
	if branch == "" || !slices.Contains(s.Options().Branches, branch) {
		return false
	}
	s.SelectBranch(branch)
	return true
}

func (s *Selection) SetBranchQuery(query string) {
	s.BranchQuery = query
}

func (s *Selection) Complete() bool {
	return s.Bank != "" && s.State != "" && s.Branch != ""
}

// Options lists what can be chosen next. States need a bank; branches need a
// bank and a state.
func (s *Selection) Options() dto.SelectionOptions {
	opts := dto.SelectionOptions{
		States:           []string{},
		Branches:         []string{},
		FilteredBranches: []string{},
	}
	if s.Bank == "" {
		return opts
	}
	opts.States = directory.StatesForBank(s.Bank)
	if s.State == "" {
		return opts
	}
	opts.Branches = directory.BranchesForBankState(s.Bank, s.State)
	opts.FilteredBranches = directory.FilterBranches(opts.Branches, s.BranchQuery)
	return opts
}

type selectionService struct{}

func NewSelectionService() *selectionService {
	return &selectionService{}
}

// Resolve replays a form submission through the selection rules: bank, then
// state, then either a chosen branch or a free-text branch query.
func (s *selectionService) Resolve(ctx context.Context, bank, state, branch, query string) dto.SelectionResponse {
	sel := &Selection{}
	sel.SelectBank(bank)
	sel.SelectState(state)
	if branch != "" && !sel.ChooseBranch(branch) {
		logger.FromContext(ctx).Debug("branch not offered for selection", "bank", bank, "state", state, "branch", branch)
	}
	if query != "" {
		sel.SetBranchQuery(query)
	}

	return dto.SelectionResponse{
		Bank:        sel.Bank,
		State:       sel.State,
		Branch:      sel.Branch,
		BranchQuery: sel.BranchQuery,
		Complete:    sel.Complete(),
		Options:     sel.Options(),
	}
}
