package models

type BranchRecord struct {
	BankName   string `json:"bank"`
	BranchName string `json:"branch"`
	StateName  string `json:"state"`
	IFSCCode   string `json:"ifsc"`
	Address    string `json:"address"`
}
