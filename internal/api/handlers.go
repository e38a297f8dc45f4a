package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/afford"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/chat"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/dataset"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/gateway"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/geo"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/recommend"
)

// Handlers contains HTTP handlers and their dependencies
type Handlers struct {
	data      *dataset.Data
	engine    *recommend.Engine
	router    *gateway.Router
	isochrone *gateway.IsochroneClient
	overpass  *gateway.OverpassClient
	commute   *gateway.CommuteService
	chat      *chat.Client
}

// NewHandlers creates a new Handlers instance
func NewHandlers(data *dataset.Data, engine *recommend.Engine, router *gateway.Router,
	isochrone *gateway.IsochroneClient, overpass *gateway.OverpassClient,
	commute *gateway.CommuteService, chatClient *chat.Client) *Handlers {
	return &Handlers{
		data:      data,
		engine:    engine,
		router:    router,
		isochrone: isochrone,
		overpass:  overpass,
		commute:   commute,
		chat:      chatClient,
	}
}

// ListSuburbs handles GET /api/suburbs
func (h *Handlers) ListSuburbs(w http.ResponseWriter, r *http.Request) {
	matches := h.data.Search(r.URL.Query().Get("search"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"suburbs": matches,
		"count":   len(matches),
	})
}

// GetSuburb handles GET /api/suburbs/{key}
func (h *Handlers) GetSuburb(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	suburb := h.data.Get(key)
	if suburb == nil {
		writeError(w, http.StatusNotFound, "suburb not found")
		return
	}

	stations := geo.StationsWithin(suburb.Latitude, suburb.Longitude, 5, h.data.Stations)
	stats := h.data.Stats()

	cbdKm := geo.Haversine(suburb.Latitude, suburb.Longitude, geo.SydneyCBD.Lat, geo.SydneyCBD.Lng)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"suburb":          suburb,
		"nearby_stations": stations,
		"cbd_km":          geo.Round1(cbdKm),
		"city_median":     stats.MedianRent,
	})
}

// Recommend handles GET /api/recommend
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	incomeStr := q.Get("income")
	if incomeStr == "" {
		writeError(w, http.StatusBadRequest, "income is required")
		return
	}
	income, err := strconv.ParseFloat(incomeStr, 64)
	if err != nil || income < 0 {
		writeError(w, http.StatusBadRequest, "income must be a non-negative number")
		return
	}

	req := recommend.Request{WeeklyIncome: income, Workplace: q.Get("workplace")}

	if v := q.Get("bedrooms"); v != "" {
		beds, err := strconv.Atoi(v)
		if err != nil || beds < 1 || beds > 5 {
			writeError(w, http.StatusBadRequest, "bedrooms must be between 1 and 5")
			return
		}
		req.Bedrooms = beds
	}
	if v := q.Get("sharing"); v != "" {
		sharing, err := strconv.Atoi(v)
		if err != nil || sharing < 1 || sharing > 4 {
			writeError(w, http.StatusBadRequest, "sharing must be between 1 and 4")
			return
		}
		req.Sharing = sharing
	}
	req.ShareBedroom = q.Get("share_bedroom") == "1"
	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	resp, err := h.engine.Recommend(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Affordability handles GET /api/affordability
func (h *Handlers) Affordability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	postcode := q.Get("postcode")
	if !validPostcode(postcode) {
		writeError(w, http.StatusBadRequest, "postcode must be a 4-digit code")
		return
	}

	income, err := strconv.ParseFloat(q.Get("income"), 64)
	if err != nil || income < 0 {
		writeError(w, http.StatusBadRequest, "income must be a non-negative number")
		return
	}

	bedrooms := 0
	if v := q.Get("bedrooms"); v != "" {
		bedrooms, err = strconv.Atoi(v)
		if err != nil || bedrooms < 1 || bedrooms > 5 {
			writeError(w, http.StatusBadRequest, "bedrooms must be between 1 and 5")
			return
		}
	}

	suburb := h.data.Get(postcode)
	if suburb == nil {
		writeError(w, http.StatusNotFound, "postcode not found")
		return
	}

	var rent *float64
	if bedrooms > 0 {
		rent = suburb.RentForBedrooms(bedrooms)
	} else {
		rent = suburb.RentOverall
	}
	if rent == nil {
		writeError(w, http.StatusNotFound, "no rent data for the requested bedroom count")
		return
	}

	stress := afford.RentStress(income, *rent)
	writeJSON(w, http.StatusOK, models.AffordabilityResult{
		SuburbKey:  suburb.SuburbKey,
		Postcode:   suburb.Postcode,
		Name:       suburb.Name,
		Bedrooms:   bedrooms,
		WeeklyRent: *rent,
		StressPct:  stress,
		Rating:     afford.Rating(stress),
	})
}

// Amenities handles GET /api/amenities
func (h *Handlers) Amenities(w http.ResponseWriter, r *http.Request) {
	postcode := r.URL.Query().Get("postcode")
	if !validPostcode(postcode) {
		writeError(w, http.StatusBadRequest, "postcode must be a 4-digit code")
		return
	}

	summary := h.data.AmenitiesFor(postcode)
	if summary == nil {
		writeError(w, http.StatusNotFound, "no amenity data for postcode")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// parseCoord reads a required float query parameter.
func parseCoord(q map[string][]string, name string) (float64, bool) {
	vals := q[name]
	if len(vals) == 0 || vals[0] == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(vals[0], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Commute handles GET /api/commute
func (h *Handlers) Commute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fromLat, ok1 := parseCoord(q, "from_lat")
	fromLng, ok2 := parseCoord(q, "from_lng")
	toLat, ok3 := parseCoord(q, "to_lat")
	toLng, ok4 := parseCoord(q, "to_lng")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		writeError(w, http.StatusBadRequest, "from_lat, from_lng, to_lat and to_lng are required")
		return
	}

	result := h.commute.GetCommute(r.Context(), fromLat, fromLng, toLat, toLng)
	writeJSON(w, http.StatusOK, result)
}

// Directions handles GET /api/directions
func (h *Handlers) Directions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fromLat, ok1 := parseCoord(q, "from_lat")
	fromLng, ok2 := parseCoord(q, "from_lng")
	toLat, ok3 := parseCoord(q, "to_lat")
	toLng, ok4 := parseCoord(q, "to_lng")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		writeError(w, http.StatusBadRequest, "from_lat, from_lng, to_lat and to_lng are required")
		return
	}

	mode := q.Get("mode")
	if mode == "" {
		mode = gateway.ModeDriving
	}
	if mode != gateway.ModeDriving && mode != gateway.ModeCycling {
		writeError(w, http.StatusBadRequest, "mode must be driving or cycling")
		return
	}

	route, err := h.router.GetRoute(r.Context(), fromLat, fromLng, toLat, toLng, mode)
	if err != nil {
		h.upstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, route)
}

// Isochrone handles GET /api/isochrone
func (h *Handlers) Isochrone(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, ok1 := parseCoord(q, "lat")
	lng, ok2 := parseCoord(q, "lng")
	if !ok1 || !ok2 {
		writeError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}

	minutes := []int{15, 30, 45}
	if v := q.Get("ranges"); v != "" {
		minutes = nil
		for _, part := range strings.Split(v, ",") {
			m, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || m <= 0 || m > 120 {
				writeError(w, http.StatusBadRequest, "ranges must be minutes between 1 and 120")
				return
			}
			minutes = append(minutes, m)
		}
		if len(minutes) > 4 {
			writeError(w, http.StatusBadRequest, "at most 4 ranges are supported")
			return
		}
	}

	iso, err := h.isochrone.GetIsochrones(r.Context(), lat, lng, minutes)
	if err != nil {
		h.upstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, iso)
}

// OverpassPOI handles POST /api/overpass-poi
func (h *Handlers) OverpassPOI(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Lat    float64 `json:"lat"`
		Lng    float64 `json:"lng"`
		Radius int     `json:"radius"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.Lat == 0 && body.Lng == 0 {
		writeError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}

	pois, err := h.overpass.SearchPOI(r.Context(), body.Lat, body.Lng, body.Radius)
	if err != nil {
		h.upstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pois)
}

// Chat handles POST /api/chat
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Messages []chat.Message    `json:"messages"`
		Context  *chat.UserContext `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(body.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "messages is required")
		return
	}

	prompt := chat.BuildSystemPrompt(h.data, body.Context)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")

	if err := h.chat.Stream(r.Context(), prompt, body.Messages, w); err != nil {
		var perr *gateway.ProviderError
		if errors.As(err, &perr) {
			// Nothing streamed yet; the error can still go out as JSON
			writeError(w, http.StatusInternalServerError, perr.Error())
			return
		}
		// Mid-stream failure, usually the caller hanging up
		log.Warn().Err(err).Msg("chat stream interrupted")
	}
}

// upstreamError maps provider failures to a 500 with the provider's status
// embedded in the message.
func (h *Handlers) upstreamError(w http.ResponseWriter, err error) {
	var perr *gateway.ProviderError
	if errors.As(err, &perr) {
		log.Error().Err(perr).Str("provider", perr.Provider).Msg("upstream provider failed")
		writeError(w, http.StatusInternalServerError, perr.Error())
		return
	}
	log.Error().Err(err).Msg("request failed")
	writeError(w, http.StatusInternalServerError, err.Error())
}
