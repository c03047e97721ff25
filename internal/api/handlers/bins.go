package handlers

import (
	"log"
	"net/http"

	"waste-collection-service/internal/api/dto"
	"waste-collection-service/internal/domain"
	"waste-collection-service/internal/ports"
)

// BinHandler exposes read-only bin retrieval endpoints.
type BinHandler struct {
	Repo ports.BinRepository
	// Fill level at which a bin becomes eligible for collection.
	Threshold int
}

func (h *BinHandler) ListEligible(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	bins, err := h.Repo.ListEligibleBins(r.Context(), h.Threshold)
	if err != nil {
		log.Printf("list eligible bins failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListBinsResponse{
		Bins: make([]dto.BinResponse, 0, len(bins)),
	}
	for _, b := range bins {
		res.Bins = append(res.Bins, dto.BinResponse{
			BinID:     b.BinID,
			Address:   b.Address,
			Location:  coordDTO(b.Location),
			FillLevel: b.FillLevel,
			Capacity:  b.Capacity,
			BinType:   b.BinType,
			Status:    b.Status,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// RequestHandler exposes read-only pickup request retrieval endpoints.
type RequestHandler struct {
	Repo ports.RequestRepository
}

func (h *RequestHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	requests, err := h.Repo.ListApprovedRequests(r.Context())
	if err != nil {
		log.Printf("list approved requests failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRequestsResponse{
		Requests: make([]dto.RequestResponse, 0, len(requests)),
	}
	for _, req := range requests {
		res.Requests = append(res.Requests, dto.RequestResponse{
			TrackingID: req.TrackingID,
			WasteType:  req.WasteType,
			Address:    req.Address,
			Location:   coordDTO(req.Location),
			Status:     req.Status,
			Priority:   req.Priority,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func coordDTO(c *domain.Coordinate) *dto.CoordinateDTO {
	if c == nil {
		return nil
	}
	return &dto.CoordinateDTO{Lat: c.Lat, Lng: c.Lng}
}
