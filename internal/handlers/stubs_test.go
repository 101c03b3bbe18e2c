package handlers

import (
	"context"
	"net/http"

	"github.com/GregMSThompson/ifsc-finder/internal/dto"
	"github.com/GregMSThompson/ifsc-finder/internal/models"
)

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	attachmentCalled bool
	attachmentType   string
	attachmentName   string
	attachmentData   []byte

	handleErrorCalled bool
	handleError       error
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data
	w.WriteHeader(status)
}

func (s *stubResponseHandler) WriteAttachment(w http.ResponseWriter, _ *http.Request, contentType, filename string, data []byte) {
	s.attachmentCalled = true
	s.attachmentType = contentType
	s.attachmentName = filename
	s.attachmentData = data
	w.WriteHeader(http.StatusOK)
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, _ string) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusBadRequest)
}

type stubIFSCService struct {
	lookupCalled   bool
	describeCalled bool
	lastCode       string
	lastCtx        context.Context
	rec            *models.BankRecord
	err            error
}

func (s *stubIFSCService) LookupBank(_ context.Context, code string) (*models.BankRecord, error) {
	s.lookupCalled = true
	s.lastCode = code
	return s.rec, s.err
}

func (s *stubIFSCService) DescribeBank(ctx context.Context, code string) (*models.BankRecord, error) {
	s.describeCalled = true
	s.lastCtx = ctx
	s.lastCode = code
	return s.rec, s.err
}

type stubBranchService struct {
	called              bool
	bank, state, branch string
	rec                 *models.BranchRecord
	err                 error
}

func (s *stubBranchService) ResolveBranch(_ context.Context, bank, state, branch string) (*models.BranchRecord, error) {
	s.called = true
	s.bank, s.state, s.branch = bank, state, branch
	return s.rec, s.err
}

type stubExportService struct {
	data []byte
	err  error
}

func (s *stubExportService) ExportDirectory(_ context.Context) ([]byte, error) {
	return s.data, s.err
}

type stubSelectionService struct {
	bank, state, branch, query string
	resp                       dto.SelectionResponse
}

func (s *stubSelectionService) Resolve(_ context.Context, bank, state, branch, query string) dto.SelectionResponse {
	s.bank, s.state, s.branch, s.query = bank, state, branch, query
	return s.resp
}

type panickingIFSCService struct{}

func (panickingIFSCService) LookupBank(context.Context, string) (*models.BankRecord, error) {
	panic("lookup table missing")
}

func (panickingIFSCService) DescribeBank(context.Context, string) (*models.BankRecord, error) {
	panic("lookup table missing")
}

type panickingBranchService struct{}

func (panickingBranchService) ResolveBranch(context.Context, string, string, string) (*models.BranchRecord, error) {
	panic("rng unavailable")
}
