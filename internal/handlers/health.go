package handlers

import (
	"net/http"

	"github.com/GregMSThompson/ifsc-finder/internal/dto"
	"github.com/GregMSThompson/ifsc-finder/internal/response"
)

type healthHandlers struct {
	ResponseHandler response.ResponseHandler
}

func NewHealthHandlers(deps *Deps) *healthHandlers {
	return &healthHandlers{ResponseHandler: deps.ResponseHandler}
}

func (h *healthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.HealthResponse{Status: "ok"})
}
