package handlers

import (
	"log/slog"
	"time"

	"github.com/GregMSThompson/ifsc-finder/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	IFSCSvc         ifscService
	BranchSvc       branchService
	ExportSvc       exportService
	SelectionSvc    selectionService

	// StrictIFSC makes /api/ifsc reject malformed codes instead of
	// describing them.
	StrictIFSC  bool
	// LookupDelay is artificial latency added before lookup responses.
	LookupDelay time.Duration
}
