package notif

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"notifeed/internal/common"

	"github.com/gorilla/mux"
)

// HTTPHandler binds the engine's commands and views to the HTTP/JSON
// surface producers and the presentation layer talk to.
type HTTPHandler struct {
	service    *Service
	dispatcher *Dispatcher
	simulator  *Simulator
}

func NewHTTPHandler(service *Service, dispatcher *Dispatcher, simulator *Simulator) *HTTPHandler {
	return &HTTPHandler{
		service:    service,
		dispatcher: dispatcher,
		simulator:  simulator,
	}
}

// Router builds the full route table.
func (h *HTTPHandler) Router() *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/notifications", h.createNotification).Methods("POST")
	api.HandleFunc("/notifications", h.listFiltered).Methods("GET")
	api.HandleFunc("/notifications/visible", h.listVisible).Methods("GET")
	api.HandleFunc("/notifications/counts", h.counts).Methods("GET")
	api.HandleFunc("/notifications/read-all", h.markAllAsRead).Methods("POST")
	api.HandleFunc("/notifications/dismiss-all", h.dismissAll).Methods("POST")
	api.HandleFunc("/notifications/{id}/read", h.markAsRead).Methods("POST")
	api.HandleFunc("/notifications/{id}/dismiss", h.dismiss).Methods("POST")
	api.HandleFunc("/notifications/{id}/archive", h.archive).Methods("POST")
	api.HandleFunc("/notifications/{id}", h.delete).Methods("DELETE")
	api.HandleFunc("/notifications/{id}/actions/{actionId}", h.performAction).Methods("POST")

	api.HandleFunc("/preferences", h.getPreferences).Methods("GET")
	api.HandleFunc("/preferences", h.updatePreferences).Methods("PATCH")
	api.HandleFunc("/filters", h.setFilters).Methods("PUT")
	api.HandleFunc("/search", h.setSearchQuery).Methods("PUT")
	api.HandleFunc("/realtime", h.setRealTime).Methods("POST")
	api.HandleFunc("/visited", h.markVisited).Methods("POST")

	router.HandleFunc("/health", h.health).Methods("GET")

	return router
}

func (h *HTTPHandler) createNotification(w http.ResponseWriter, r *http.Request) {
	var spec common.NotificationSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.CreateNotification(spec)
	if err != nil {
		log.Printf("Failed to create notification: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *HTTPHandler) listFiltered(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": h.service.Filtered(),
		"filters":       h.service.Filters(),
		"query":         h.service.SearchQuery(),
	})
}

func (h *HTTPHandler) listVisible(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": h.service.Visible(),
	})
}

func (h *HTTPHandler) counts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Counts())
}

func (h *HTTPHandler) markAsRead(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.service.MarkAsRead)
}

func (h *HTTPHandler) dismiss(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.service.Dismiss)
}

func (h *HTTPHandler) archive(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.service.Archive)
}

func (h *HTTPHandler) delete(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.service.Delete)
}

// command runs a single-id lifecycle command and maps the error
// taxonomy to status codes.
func (h *HTTPHandler) command(w http.ResponseWriter, r *http.Request, cmd func(string) error) {
	id := mux.Vars(r)["id"]

	if err := cmd(id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			log.Printf("Command on missing notification: %v", err)
			writeError(w, http.StatusNotFound, "notification not found")
			return
		}
		log.Printf("Command failed: %v", err)
		writeError(w, http.StatusInternalServerError, "command failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HTTPHandler) markAllAsRead(w http.ResponseWriter, r *http.Request) {
	h.service.MarkAllAsRead()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HTTPHandler) dismissAll(w http.ResponseWriter, r *http.Request) {
	h.service.DismissAll()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HTTPHandler) performAction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.dispatcher.PerformAction(vars["id"], vars["actionId"]); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "notification not found")
			return
		}
		log.Printf("PerformAction failed: %v", err)
		writeError(w, http.StatusInternalServerError, "action failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HTTPHandler) getPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Preferences())
}

func (h *HTTPHandler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var patch common.PreferencePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.service.UpdatePreferences(patch)
	if err != nil {
		log.Printf("Preference update rejected: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) setFilters(w http.ResponseWriter, r *http.Request) {
	var patch common.FilterPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, h.service.SetFilters(patch))
}

func (h *HTTPHandler) setSearchQuery(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.service.SetSearchQuery(body.Query)
	writeJSON(w, http.StatusOK, map[string]string{"query": body.Query})
}

func (h *HTTPHandler) setRealTime(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.simulator.SetEnabled(body.Enabled)
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": h.simulator.Enabled()})
}

func (h *HTTPHandler) markVisited(w http.ResponseWriter, r *http.Request) {
	h.service.MarkVisited()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HTTPHandler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "notifeed-notifs",
		"timestamp": time.Now().UTC(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
