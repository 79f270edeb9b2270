package api

import (
	"net/http"
	"strings"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/http/response"
)

// handleGetPrinting returns the normalized print orders and their rollup.
// Passing type=upcoming restricts the listing to upcoming orders.
func (s *Server) handleGetPrinting(w http.ResponseWriter, r *http.Request) {
	upcomingOnly := strings.EqualFold(r.URL.Query().Get("type"), "upcoming")
	result, err := s.printingService.Data(r.Context(), upcomingOnly)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, result, s.logger)
}

// handleGetCopyright returns the normalized copyright submissions and
// their rollup.
func (s *Server) handleGetCopyright(w http.ResponseWriter, r *http.Request) {
	result, err := s.copyrightService.Data(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, result, s.logger)
}
