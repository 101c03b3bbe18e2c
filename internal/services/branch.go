package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/GregMSThompson/ifsc-finder/internal/errs"
	"github.com/GregMSThompson/ifsc-finder/internal/models"
	"github.com/GregMSThompson/ifsc-finder/pkg/logger"
)

const MsgSelectionIncomplete = "Please complete all selections"

// randSource is satisfied by *rand.Rand. The default uses the package level
// generator, which is safe for concurrent use.
type randSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type branchService struct {
	rng randSource
}

// NewBranchService returns a resolver drawing from rng, or from the shared
// generator when rng is nil.
func NewBranchService(rng randSource) *branchService {
	if rng == nil {
		rng = globalRand{}
	}
	return &branchService{rng: rng}
}

// ResolveBranch builds a placeholder record for the selection. The IFSC code
// and address carry a random component, so repeated calls differ. The inputs
// are not checked against the directory.
func (s *branchService) ResolveBranch(ctx context.Context, bankName, stateName, branchName string) (*models.BranchRecord, error) {
	if bankName == "" || stateName == "" || branchName == "" {
		return nil, errs.NewValidationError(MsgSelectionIncomplete)
	}

	rec := &models.BranchRecord{
		BankName:   bankName,
		BranchName: branchName,
		StateName:  stateName,
		IFSCCode:   fmt.Sprintf("%s0%d", BankCode(bankName), 100000+s.rng.IntN(900000)),
		Address:    fmt.Sprintf("%d, Main Street, %s, %s", 1+s.rng.IntN(100), branchName, stateName),
	}

	logger.FromContext(ctx).Info("ifsc code generated", "ifsc", rec.IFSCCode)
	return rec, nil
}

// BankCode is the upper-cased first four characters of a bank name.
func BankCode(bankName string) string {
	r := []rune(bankName)
	if len(r) > 4 {
		r = r[:4]
	}
	return strings.ToUpper(string(r))
}
