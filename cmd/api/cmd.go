package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/ifsc-finder/internal/bootstrap"
	"github.com/GregMSThompson/ifsc-finder/internal/config"
	"github.com/GregMSThompson/ifsc-finder/internal/handlers"
	"github.com/GregMSThompson/ifsc-finder/internal/response"
	"github.com/GregMSThompson/ifsc-finder/internal/router"
	"github.com/GregMSThompson/ifsc-finder/internal/services"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// services
	ifscv := services.NewIFSCService()
	brserv := services.NewBranchService(nil)
	exserv := services.NewExportService()
	selserv := services.NewSelectionService()

	// response handler
	rh := response.New(bs.Log)

	// dependencies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.IFSCSvc = ifscv
	deps.BranchSvc = brserv
	deps.ExportSvc = exserv
	deps.SelectionSvc = selserv
	deps.StrictIFSC = cfg.StrictIFSC
	deps.LookupDelay = cfg.LookupDelay

	// router
	r := router.NewRouter(deps, bs.Assets)
	bs.Log.Info("server starting", "addr", cfg.Addr(), "strict_ifsc", cfg.StrictIFSC)
	err = http.ListenAndServe(cfg.Addr(), r)
	exitOnError("server start failed", err, bs.Log)
}
