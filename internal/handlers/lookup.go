package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/ifsc-finder/internal/errs"
	"github.com/GregMSThompson/ifsc-finder/internal/middleware"
	"github.com/GregMSThompson/ifsc-finder/internal/models"
	"github.com/GregMSThompson/ifsc-finder/internal/response"
	"github.com/GregMSThompson/ifsc-finder/pkg/logger"
)

const (
	MsgBranchParamsRequired = "Bank, state, and branch are required"
	MsgBankDetailsFailed    = "Failed to fetch bank details"
	MsgIFSCCodesFailed      = "Failed to fetch IFSC codes"
)

type ifscService interface {
	LookupBank(ctx context.Context, ifscCode string) (*models.BankRecord, error)
	DescribeBank(ctx context.Context, ifscCode string) (*models.BankRecord, error)
}

type branchService interface {
	ResolveBranch(ctx context.Context, bankName, stateName, branchName string) (*models.BranchRecord, error)
}

type lookupHandlers struct {
	ResponseHandler response.ResponseHandler
	IFSCSvc         ifscService
	BranchSvc       branchService
	StrictIFSC      bool
	LookupDelay     time.Duration
}

func NewLookupHandlers(deps *Deps) *lookupHandlers {
	return &lookupHandlers{
		ResponseHandler: deps.ResponseHandler,
		IFSCSvc:         deps.IFSCSvc,
		BranchSvc:       deps.BranchSvc,
		StrictIFSC:      deps.StrictIFSC,
		LookupDelay:     deps.LookupDelay,
	}
}

func (h *lookupHandlers) LookupRoutes() chi.Router {
	rec := middleware.NewRecoverMiddleware(h.ResponseHandler)

	r := chi.NewRouter()
	r.With(rec.RecoverAs("get_bank_details", MsgBankDetailsFailed)).Get("/ifsc", h.GetBankDetails)
	r.With(rec.RecoverAs("find_ifsc", MsgIFSCCodesFailed)).Get("/banks", h.FindIFSC)
	return r
}

// GetBankDetails serves GET /api/ifsc?ifsc=<code>.
func (h *lookupHandlers) GetBankDetails(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("ifsc")
	_, ctx := logger.With(r.Context(), "ifsc", code)
	r = r.WithContext(ctx)

	lookup := h.IFSCSvc.DescribeBank
	if h.StrictIFSC {
		lookup = h.IFSCSvc.LookupBank
	}
	rec, err := lookup(ctx, code)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if !h.wait(r.Context()) {
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, rec)
}

// FindIFSC serves GET /api/banks?bank=&state=&branch= and answers with a
// single-element list.
func (h *lookupHandlers) FindIFSC(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bank, state, branch := q.Get("bank"), q.Get("state"), q.Get("branch")
	if bank == "" || state == "" || branch == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError(MsgBranchParamsRequired))
		return
	}

	_, ctx := logger.With(r.Context(), "bank", bank, "state", state, "branch", branch)
	r = r.WithContext(ctx)

	rec, err := h.BranchSvc.ResolveBranch(ctx, bank, state, branch)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if !h.wait(r.Context()) {
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, []*models.BranchRecord{rec})
}

// wait applies LookupDelay. It reports false when the client went away first.
func (h *lookupHandlers) wait(ctx context.Context) bool {
	if h.LookupDelay <= 0 {
		return true
	}
	t := time.NewTimer(h.LookupDelay)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		logger.FromContext(ctx).Info("client gone before lookup completed", "error", ctx.Err())
		return false
	}
}
