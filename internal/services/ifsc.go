package services

import (
	"context"
	"regexp"

	"github.com/GregMSThompson/ifsc-finder/internal/errs"
	"github.com/GregMSThompson/ifsc-finder/internal/models"
	"github.com/GregMSThompson/ifsc-finder/pkg/logger"
)

const (
	MsgIFSCRequired      = "IFSC code is required"
	MsgIFSCInvalidFormat = "Invalid IFSC code format. It should be like SBIN0123456"

	unknownBank = "Unknown Bank"
)

// four bank letters, a literal zero, six branch characters
var ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

var bankNames = map[string]string{
	"SBIN": "State Bank of India",
	"HDFC": "HDFC Bank",
	"ICIC": "ICICI Bank",
	"UTIB": "Axis Bank",
}

// ValidIFSC reports whether code is a well formed IFSC code. It says nothing
// about whether the branch exists.
func ValidIFSC(code string) bool {
	return ifscPattern.MatchString(code)
}

// BankNameForCode maps the bank prefix of an IFSC code to a display name.
func BankNameForCode(code string) string {
	prefix := code
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	if name, ok := bankNames[prefix]; ok {
		return name
	}
	return unknownBank
}

type ifscService struct{}

func NewIFSCService() *ifscService {
	return &ifscService{}
}

// LookupBank validates the code fully before describing it.
func (s *ifscService) LookupBank(ctx context.Context, ifscCode string) (*models.BankRecord, error) {
	if ifscCode == "" {
		return nil, errs.NewValidationError(MsgIFSCRequired)
	}
	if !ValidIFSC(ifscCode) {
		return nil, errs.NewValidationError(MsgIFSCInvalidFormat)
	}
	return s.describe(ctx, ifscCode), nil
}

// DescribeBank only requires a non-empty code. Malformed codes still get a
// record, matching the public /api/ifsc route.
func (s *ifscService) DescribeBank(ctx context.Context, ifscCode string) (*models.BankRecord, error) {
	if ifscCode == "" {
		return nil, errs.NewValidationError(MsgIFSCRequired)
	}
	if !ValidIFSC(ifscCode) {
		logger.FromContext(ctx).Debug("describing malformed ifsc code")
	}
	return s.describe(ctx, ifscCode), nil
}

func (s *ifscService) describe(ctx context.Context, ifscCode string) *models.BankRecord {
	rec := &models.BankRecord{
		BankName:      BankNameForCode(ifscCode),
		IFSCCode:      ifscCode,
		BranchName:    "Sample Branch",
		Address:       "123, Main Street, Sample City, Sample State - 123456",
		City:          "Sample City",
		State:         "Sample State",
		ContactNumber: "+91 1234567890",
		MICRCode:      "123456789",
		SupportsUPI:   true,
		SupportsRTGS:  true,
		SupportsNEFT:  true,
		SupportsIMPS:  true,
	}

	logger.FromContext(ctx).Info("bank details resolved", "bank", rec.BankName)
	return rec
}
