package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/ifsc-finder/internal/directory"
	"github.com/GregMSThompson/ifsc-finder/internal/dto"
	"github.com/GregMSThompson/ifsc-finder/internal/errs"
	"github.com/GregMSThompson/ifsc-finder/internal/response"
)

const (
	MsgBankRequired         = "Bank is required"
	MsgBankStateRequired    = "Bank and state are required"
	xlsxContentType         = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	directoryExportFilename = "ifsc-directory.xlsx"
)

type exportService interface {
	ExportDirectory(ctx context.Context) ([]byte, error)
}

type selectionService interface {
	Resolve(ctx context.Context, bank, state, branch, query string) dto.SelectionResponse
}

type directoryHandlers struct {
	ResponseHandler response.ResponseHandler
	ExportSvc       exportService
	SelectionSvc    selectionService
}

func NewDirectoryHandlers(deps *Deps) *directoryHandlers {
	return &directoryHandlers{
		ResponseHandler: deps.ResponseHandler,
		ExportSvc:       deps.ExportSvc,
		SelectionSvc:    deps.SelectionSvc,
	}
}

func (h *directoryHandlers) DirectoryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/banks", h.ListBanks)
	r.Get("/states", h.ListStates)
	r.Get("/branches", h.ListBranches)
	r.Get("/options", h.Options)
	r.Get("/export", h.Export)
	return r
}

func (h *directoryHandlers) ListBanks(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, directory.Banks())
}

func (h *directoryHandlers) ListStates(w http.ResponseWriter, r *http.Request) {
	bank := r.URL.Query().Get("bank")
	if bank == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError(MsgBankRequired))
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.StatesResponse{
		Bank:   bank,
		States: directory.StatesForBank(bank),
	})
}

// ListBranches filters by the optional q parameter, ignoring case.
func (h *directoryHandlers) ListBranches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bank, state, query := q.Get("bank"), q.Get("state"), q.Get("q")
	if bank == "" || state == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError(MsgBankStateRequired))
		return
	}

	branches := directory.FilterBranches(directory.BranchesForBankState(bank, state), query)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.BranchesResponse{
		Bank:     bank,
		State:    state,
		Query:    query,
		Branches: branches,
	})
}

// Options applies the form's selection rules to the query and returns the
// normalised selection with the choices available next. A branch is only
// kept when it is offered for the bank and state.
func (h *directoryHandlers) Options(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel := h.SelectionSvc.Resolve(r.Context(), q.Get("bank"), q.Get("state"), q.Get("branch"), q.Get("q"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, sel)
}

func (h *directoryHandlers) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.ExportSvc.ExportDirectory(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteAttachment(w, r, xlsxContentType, directoryExportFilename, data)
}
