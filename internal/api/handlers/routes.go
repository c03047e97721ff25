package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"waste-collection-service/internal/api/dto"
	"waste-collection-service/internal/domain"
	"waste-collection-service/internal/ports"
	"waste-collection-service/internal/routing"
	"waste-collection-service/internal/services"
)

type RouteHandler struct {
	Bins      ports.BinRepository
	Requests  ports.RequestRepository
	Store     ports.RouteStore
	Cache     ports.RouteCache
	Notifier  ports.CrewNotifier
	Estimator routing.EstimatorConfig
}

// Optimize runs one route optimization cycle for the posted depot snapshot.
// Engine rejections (bad start location, out-of-range configuration) map to
// 400; a run with no eligible stops is a 200 with an empty route.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.StartLocation == nil {
		writeError(w, r, http.StatusBadRequest, "start_location is required")
		return
	}

	opts := routing.DefaultOptions()
	opts.StartLocation = domain.Coordinate{Lat: req.StartLocation.Lat, Lng: req.StartLocation.Lng}
	opts.Estimator = h.Estimator
	if req.FillLevelThreshold != nil {
		opts.FillLevelThreshold = *req.FillLevelThreshold
	}
	if req.MaxStops != nil {
		opts.MaxStops = *req.MaxStops
	}
	if req.IncludeRequests != nil {
		opts.IncludeRequests = *req.IncludeRequests
	}

	svcReq := services.PlanCollectionRequest{
		DepotID: req.DepotID,
		Options: opts,
	}

	route, err := services.PlanCollection(r.Context(), svcReq, h.Bins, h.Requests, h.Store, h.Cache, h.Notifier)
	if err != nil {
		if errors.Is(err, routing.ErrInvalidStartLocation) || errors.Is(err, routing.ErrConfigOutOfRange) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("plan collection failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, routeResponse(route))
}

// Latest returns the most recently planned route for a depot from the cache.
func (h *RouteHandler) Latest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	depotID := r.URL.Query().Get("depot_id")
	if depotID == "" {
		writeError(w, r, http.StatusBadRequest, "depot_id is required")
		return
	}

	if h.Cache == nil {
		writeError(w, r, http.StatusNotFound, "no cached route for depot")
		return
	}

	route, err := h.Cache.GetLatest(r.Context(), depotID)
	if err != nil {
		if errors.Is(err, ports.ErrRouteNotCached) {
			writeError(w, r, http.StatusNotFound, "no cached route for depot")
			return
		}
		log.Printf("get latest route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, routeResponse(route))
}

func routeResponse(route domain.OptimizedRoute) dto.RouteResponse {
	res := dto.RouteResponse{
		TotalStops:       route.TotalStops,
		TotalDistanceKm:  route.TotalDistanceKm,
		EstimatedMinutes: route.EstimatedMinutes,
		Stops:            make([]dto.RouteStopResponse, 0, len(route.Stops)),
	}
	for _, s := range route.Stops {
		res.Stops = append(res.Stops, dto.RouteStopResponse{
			StopType:             string(s.Kind),
			ReferenceID:          s.ReferenceID,
			Address:              s.Address,
			Location:             dto.CoordinateDTO{Lat: s.Location.Lat, Lng: s.Location.Lng},
			SequencePosition:     s.SequencePosition,
			CumulativeDistanceKm: s.CumulativeDistanceKm,
			ArrivalOffsetMinutes: s.ArrivalOffsetMinutes,
			Metadata:             s.Metadata,
		})
	}
	return res
}
