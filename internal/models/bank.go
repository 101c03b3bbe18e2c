package models

// BankRecord is the detail view of a single branch, keyed the same way as the
// public IFSC API responses.
type BankRecord struct {
	BankName      string `json:"BANK"`
	IFSCCode      string `json:"IFSC"`
	BranchName    string `json:"BRANCH"`
	Address       string `json:"ADDRESS"`
	City          string `json:"CITY"`
	State         string `json:"STATE"`
	ContactNumber string `json:"CONTACT"`
	MICRCode      string `json:"MICR"`
	SupportsUPI   bool   `json:"UPI"`
	SupportsRTGS  bool   `json:"RTGS"`
	SupportsNEFT  bool   `json:"NEFT"`
	SupportsIMPS  bool   `json:"IMPS"`
}
