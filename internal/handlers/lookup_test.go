package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GregMSThompson/ifsc-finder/internal/errs"
	"github.com/GregMSThompson/ifsc-finder/internal/models"
	"github.com/GregMSThompson/ifsc-finder/internal/response"
	"github.com/GregMSThompson/ifsc-finder/pkg/logger"
)

func TestGetBankDetailsLenientByDefault(t *testing.T) {
	svc := &stubIFSCService{rec: &models.BankRecord{BankName: "Unknown Bank", IFSCCode: "bad"}}
	resp := &stubResponseHandler{}
	h := NewLookupHandlers(&Deps{ResponseHandler: resp, IFSCSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/ifsc?ifsc=bad", nil)
	rr := httptest.NewRecorder()
	h.GetBankDetails(rr, req)

	if !svc.describeCalled || svc.lookupCalled {
		t.Fatalf("expected DescribeBank only, got describe=%v lookup=%v", svc.describeCalled, svc.lookupCalled)
	}
	if svc.lastCode != "bad" {
		t.Fatalf("service received %q", svc.lastCode)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	if resp.writeSuccessData != svc.rec {
		t.Fatalf("unexpected payload: %#v", resp.writeSuccessData)
	}
}

func TestGetBankDetailsStrict(t *testing.T) {
	svc := &stubIFSCService{err: errs.NewValidationError("Invalid IFSC code format. It should be like SBIN0123456")}
	resp := &stubResponseHandler{}
	h := NewLookupHandlers(&Deps{ResponseHandler: resp, IFSCSvc: svc, StrictIFSC: true})

	req := httptest.NewRequest(http.MethodGet, "/ifsc?ifsc=bad", nil)
	rr := httptest.NewRecorder()
	h.GetBankDetails(rr, req)

	if !svc.lookupCalled || svc.describeCalled {
		t.Fatalf("expected LookupBank only, got describe=%v lookup=%v", svc.describeCalled, svc.lookupCalled)
	}
	if !resp.handleErrorCalled || !errors.Is(resp.handleError, svc.err) {
		t.Fatalf("expected service error to reach HandleError, got %v", resp.handleError)
	}
	if resp.writeSuccessCalled {
		t.Fatal("WriteSuccess should not be called on error")
	}
}

func TestFindIFSCSuccess(t *testing.T) {
	rec := &models.BranchRecord{BankName: "HDFC Bank", IFSCCode: "HDFC0123456"}
	svc := &stubBranchService{rec: rec}
	resp := &stubResponseHandler{}
	h := NewLookupHandlers(&Deps{ResponseHandler: resp, BranchSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/banks?bank=HDFC+Bank&state=Gujarat&branch=Rajkot", nil)
	rr := httptest.NewRecorder()
	h.FindIFSC(rr, req)

	if svc.bank != "HDFC Bank" || svc.state != "Gujarat" || svc.branch != "Rajkot" {
		t.Fatalf("service received %q %q %q", svc.bank, svc.state, svc.branch)
	}
	list, ok := resp.writeSuccessData.([]*models.BranchRecord)
	if !ok || len(list) != 1 || list[0] != rec {
		t.Fatalf("expected single-element list, got %#v", resp.writeSuccessData)
	}
}

func TestFindIFSCMissingParams(t *testing.T) {
	for _, query := range []string{"", "?bank=HDFC+Bank", "?bank=HDFC+Bank&state=Gujarat", "?state=Gujarat&branch=Rajkot"} {
		svc := &stubBranchService{}
		resp := &stubResponseHandler{}
		h := NewLookupHandlers(&Deps{ResponseHandler: resp, BranchSvc: svc})

		req := httptest.NewRequest(http.MethodGet, "/banks"+query, nil)
		rr := httptest.NewRecorder()
		h.FindIFSC(rr, req)

		if svc.called {
			t.Fatalf("%q: service should not be called", query)
		}
		var verr *errs.ValidationError
		if !errors.As(resp.handleError, &verr) || verr.Message != MsgBranchParamsRequired {
			t.Fatalf("%q: expected params validation error, got %v", query, resp.handleError)
		}
	}
}

func TestFindIFSCServiceError(t *testing.T) {
	svc := &stubBranchService{err: errors.New("rng exploded")}
	resp := &stubResponseHandler{}
	h := NewLookupHandlers(&Deps{ResponseHandler: resp, BranchSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/banks?bank=a&state=b&branch=c", nil)
	rr := httptest.NewRecorder()
	h.FindIFSC(rr, req)

	if !resp.handleErrorCalled || !errors.Is(resp.handleError, svc.err) {
		t.Fatalf("expected HandleError with service error, got %v", resp.handleError)
	}
}

func TestLookupDelayAbortsOnCancelledRequest(t *testing.T) {
	svc := &stubIFSCService{rec: &models.BankRecord{}}
	resp := &stubResponseHandler{}
	h := NewLookupHandlers(&Deps{ResponseHandler: resp, IFSCSvc: svc, LookupDelay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/ifsc?ifsc=SBIN0123456", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	h.GetBankDetails(rr, req)

	if resp.writeSuccessCalled {
		t.Fatal("no response should be written once the client is gone")
	}
}

func TestLookupDelayWaits(t *testing.T) {
	svc := &stubIFSCService{rec: &models.BankRecord{}}
	resp := &stubResponseHandler{}
	delay := 20 * time.Millisecond
	h := NewLookupHandlers(&Deps{ResponseHandler: resp, IFSCSvc: svc, LookupDelay: delay})

	start := time.Now()
	req := httptest.NewRequest(http.MethodGet, "/ifsc?ifsc=SBIN0123456", nil)
	h.GetBankDetails(httptest.NewRecorder(), req)

	if elapsed := time.Since(start); elapsed < delay {
		t.Fatalf("handler returned after %v, want at least %v", elapsed, delay)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess after the delay")
	}
}

func TestLookupRoutesRecoverWithRouteMessage(t *testing.T) {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	h := NewLookupHandlers(&Deps{
		ResponseHandler: response.New(log),
		IFSCSvc:         panickingIFSCService{},
		BranchSvc:       panickingBranchService{},
	})
	routes := h.LookupRoutes()

	cases := map[string]string{
		"/ifsc?ifsc=SBIN0123456":         MsgBankDetailsFailed,
		"/banks?bank=a&state=b&branch=c": MsgIFSCCodesFailed,
	}
	for path, want := range cases {
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("%s: status = %d, want 500", path, rr.Code)
		}
		var body response.ErrorResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: body is not JSON: %q", path, rr.Body.String())
		}
		if body.Error != want {
			t.Fatalf("%s: error = %q, want %q", path, body.Error, want)
		}
	}
}

func TestGetBankDetailsEnrichesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(logger.NewCloudRunHandlerTo(&buf, slog.LevelInfo))
	svc := &stubIFSCService{rec: &models.BankRecord{}}
	h := NewLookupHandlers(&Deps{ResponseHandler: &stubResponseHandler{}, IFSCSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/ifsc?ifsc=SBIN0123456", nil)
	req = req.WithContext(logger.ToContext(req.Context(), base))
	h.GetBankDetails(httptest.NewRecorder(), req)

	logger.FromContext(svc.lastCtx).Info("from service")
	if !strings.Contains(buf.String(), `"ifsc":"SBIN0123456"`) {
		t.Fatalf("service logger should carry the ifsc attribute: %s", buf.String())
	}
}
