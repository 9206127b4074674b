package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/observability"
	"github.com/ReyhanHussain/YatraGPT/internal/planner"
	"github.com/ReyhanHussain/YatraGPT/internal/store/postgres"
)

// Handler handles HTTP requests.
type Handler struct {
	planner  *planner.PlannerService
	chat     *planner.ChatService
	renderer domain.DocumentRenderer
	gems     domain.GemStore
	profiles domain.ProfileStore
}

// NewHandler creates a new HTTP handler (DI constructor). The stores may
// be nil when no database is configured; their endpoints then answer 503.
func NewHandler(
	plannerSvc *planner.PlannerService,
	chat *planner.ChatService,
	renderer domain.DocumentRenderer,
	gems domain.GemStore,
	profiles domain.ProfileStore,
) *Handler {
	return &Handler{
		planner:  plannerSvc,
		chat:     chat,
		renderer: renderer,
		gems:     gems,
		profiles: profiles,
	}
}

// HandleItinerary processes itinerary generation requests.
func (h *Handler) HandleItinerary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.ItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("itinerary request received",
		zap.String("destination", req.Destination),
		zap.Int("days", req.Days),
	)

	itinerary, err := h.planner.GenerateItinerary(ctx, &req)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	logger.Info("itinerary generated", zap.Int("matched_days", len(itinerary.Days)))

	writeJSON(ctx, w, http.StatusOK, itinerary)
}

// HandleItineraryPDF generates an itinerary and returns it rendered as a
// PDF document.
func (h *Handler) HandleItineraryPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.ItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	itinerary, err := h.planner.GenerateItinerary(ctx, &req)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	document, err := h.renderer.Render(itinerary)
	if err != nil {
		observability.FromContext(ctx).Error("pdf rendering failed", zap.Error(err))
		http.Error(w, "failed to render itinerary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", pdfFilename(req.Destination)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(document)
}

// HandleRecommendations processes recommendation requests.
func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	recs, err := h.planner.GenerateRecommendations(ctx, &req)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]interface{}{
		"recommendations": recs,
		"count":           len(recs),
	})
}

type chatRequest struct {
	Message string `json:"message"`
}

// HandleChat answers a chat message as an SSE stream. Every typing step is
// one data event carrying the accumulated text so far; the stream closes
// after a final done event.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message cannot be empty", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("streaming not supported")
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set headers for SSE.
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sendText := func(text string) {
		data, _ := json.Marshal(map[string]string{"text": text})
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
	}

	_, err := h.chat.Respond(ctx, req.Message, sendText)
	if err != nil {
		// Headers are already out; send the apology inside the stream.
		logger.Error("chat failed", zap.Error(err))
		sendText(domain.DegradedResponseText)
	}

	fmt.Fprint(w, "event: done\ndata: {}\n\n")
	flusher.Flush()
}

// HandleListGems lists hidden gems, filtered by query parameters.
func (h *Handler) HandleListGems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.gems == nil {
		http.Error(w, "gem storage not configured", http.StatusServiceUnavailable)
		return
	}

	filter := domain.GemFilter{
		State:      r.URL.Query().Get("state"),
		Difficulty: r.URL.Query().Get("difficulty"),
		Crowd:      r.URL.Query().Get("crowd"),
	}

	gems, err := h.gems.ListGems(ctx, filter)
	if err != nil {
		observability.FromContext(ctx).Error("failed to list gems", zap.Error(err))
		http.Error(w, "failed to list gems", http.StatusInternalServerError)
		return
	}
	if gems == nil {
		gems = []domain.HiddenGem{}
	}

	writeJSON(ctx, w, http.StatusOK, gems)
}

// HandleGemViews increments the view counter of one gem.
func (h *Handler) HandleGemViews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.gems == nil {
		http.Error(w, "gem storage not configured", http.StatusServiceUnavailable)
		return
	}

	gemID, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.gems.IncrementViews(ctx, gemID); err != nil {
		observability.FromContext(ctx).Error("failed to increment views", zap.Error(err))
		http.Error(w, "failed to increment views", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type favoriteRequest struct {
	UserID string `json:"user_id"`
}

// HandleGemFavorite records a favorite for one gem.
func (h *Handler) HandleGemFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.gems == nil {
		http.Error(w, "gem storage not configured", http.StatusServiceUnavailable)
		return
	}

	gemID, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req favoriteRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.gems.AddFavorite(ctx, gemID, req.UserID); err != nil {
		observability.FromContext(ctx).Error("failed to add favorite", zap.Error(err))
		http.Error(w, "failed to add favorite", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListProfiles lists cultural-connection profiles.
func (h *Handler) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.profiles == nil {
		http.Error(w, "profile storage not configured", http.StatusServiceUnavailable)
		return
	}

	profiles, err := h.profiles.ListProfiles(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("failed to list profiles", zap.Error(err))
		http.Error(w, "failed to list profiles", http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}

	writeJSON(ctx, w, http.StatusOK, profiles)
}

// HandleGetProfile returns one profile by id.
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.profiles == nil {
		http.Error(w, "profile storage not configured", http.StatusServiceUnavailable)
		return
	}

	profileID, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.profiles.GetProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, postgres.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		observability.FromContext(ctx).Error("failed to get profile", zap.Error(err))
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, profile)
}

type ratingRequest struct {
	Rating float64 `json:"rating"`
}

// HandleProfileRating applies a rating and returns the refreshed profile.
func (h *Handler) HandleProfileRating(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.profiles == nil {
		http.Error(w, "profile storage not configured", http.StatusServiceUnavailable)
		return
	}

	profileID, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	profile, err := h.profiles.UpdateRating(ctx, profileID, req.Rating)
	if err != nil {
		if errors.Is(err, postgres.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		observability.FromContext(ctx).Error("failed to update rating", zap.Error(err))
		http.Error(w, "failed to update rating", http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, profile)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

// writeError maps domain error types to status codes: upstream faults are
// 502, unusable generation output is 422, everything else is a bad request.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := observability.FromContext(ctx)

	var (
		transport *domain.TransportError
		api       *domain.APIError
		malformed *domain.MalformedResponseError
		parse     *domain.ParseError
	)
	switch {
	case errors.As(err, &transport), errors.As(err, &api), errors.As(err, &malformed):
		logger.Error("upstream provider failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
	case errors.As(err, &parse):
		logger.Error("generated text was unusable", zap.Error(err))
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		logger.Warn("request rejected", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		observability.FromContext(ctx).Error("failed to encode response", zap.Error(err))
	}
}

func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func pdfFilename(destination string) string {
	name := "Itinerary.pdf"
	if destination != "" {
		name = destination + "-Itinerary.pdf"
	}
	return name
}
