// Package directory holds the static bank, state and branch reference data
// used to populate selection lists. The data is fixed at build time and every
// accessor returns a fresh slice, so callers cannot mutate it.
package directory

import "strings"

// Entry is one flattened (bank, state, branch) row.
type Entry struct {
	Bank   string
	State  string
	Branch string
}

// Banks returns every selectable bank name in display order.
func Banks() []string {
	out := make([]string, 0, len(banks))
	for _, b := range banks {
		out = append(out, b.name)
	}
	return out
}

// StatesForBank returns the states listed for bankName, or an empty slice
// when the bank is unknown or has no state data.
func StatesForBank(bankName string) []string {
	b, ok := findBank(bankName)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(b.states))
	for _, s := range b.states {
		out = append(out, s.name)
	}
	return out
}

// BranchesForBankState returns the branches for a bank and state pair, or an
// empty slice when either is absent.
func BranchesForBankState(bankName, stateName string) []string {
	b, ok := findBank(bankName)
	if !ok {
		return []string{}
	}
	for _, s := range b.states {
		if s.name == stateName {
			return append([]string{}, s.branches...)
		}
	}
	return []string{}
}

// FilterBranches keeps the branches containing query, ignoring case. Order is
// preserved and an empty query keeps everything.
func FilterBranches(branches []string, query string) []string {
	q := strings.ToLower(query)
	out := make([]string, 0, len(branches))
	for _, b := range branches {
		if strings.Contains(strings.ToLower(b), q) {
			out = append(out, b)
		}
	}
	return out
}

// Entries flattens the directory into rows ordered by bank, state and branch
// as listed. Banks without state data contribute no rows.
func Entries() []Entry {
	var out []Entry
	for _, b := range banks {
		for _, s := range b.states {
			for _, br := range s.branches {
				out = append(out, Entry{Bank: b.name, State: s.name, Branch: br})
			}
		}
	}
	return out
}

func findBank(name string) (bank, bool) {
	for _, b := range banks {
		if b.name == name {
			return b, true
		}
	}
	return bank{}, false
}
