package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/AbdulrahmanTurki/testQR/internal/service"
)

type Handler struct {
	Auth      service.AuthServiceInterface
	Orders    service.OrderServiceInterface
	Menu      service.MenuServiceInterface
	QR        service.QRServiceInterface
	Analytics service.AnalyticsServiceInterface
	Profiles  service.ProfileServiceInterface
	Events    service.OrderEventStream
}

func NewHandler(
	auth service.AuthServiceInterface,
	orders service.OrderServiceInterface,
	menu service.MenuServiceInterface,
	qr service.QRServiceInterface,
	analytics service.AnalyticsServiceInterface,
	profiles service.ProfileServiceInterface,
	events service.OrderEventStream,
) *Handler {
	return &Handler{
		Auth:      auth,
		Orders:    orders,
		Menu:      menu,
		QR:        qr,
		Analytics: analytics,
		Profiles:  profiles,
		Events:    events,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/signup", h.signup).Methods("POST")
	r.HandleFunc("/api/auth/signin", h.signin).Methods("POST")

	// Public, reached from a scanned QR code. Orders write through the
	// service without a session, the equivalent of the original's
	// elevated-privilege placement path.
	r.HandleFunc("/api/menu/{userId}", h.publicMenu).Methods("GET")
	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")

	dash := r.PathPrefix("/api/dashboard").Subrouter()
	dash.Use(h.requireAuth)

	dash.HandleFunc("/menu", h.listMenuItems).Methods("GET")
	dash.HandleFunc("/menu", h.createMenuItem).Methods("POST")
	dash.HandleFunc("/menu/{id}", h.updateMenuItem).Methods("PUT")
	dash.HandleFunc("/menu/{id}", h.deleteMenuItem).Methods("DELETE")

	dash.HandleFunc("/orders/active", h.activeOrders).Methods("GET")
	dash.HandleFunc("/orders/events", h.orderEvents).Methods("GET")
	dash.HandleFunc("/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")

	dash.HandleFunc("/qrcodes", h.listQRCodes).Methods("GET")
	dash.HandleFunc("/qrcodes", h.createQRCode).Methods("POST")
	dash.HandleFunc("/qrcodes/{id}/image", h.qrCodeImage).Methods("GET")
	dash.HandleFunc("/qrcodes/{id}", h.deleteQRCode).Methods("DELETE")

	dash.HandleFunc("/analytics", h.analytics).Methods("GET")

	dash.HandleFunc("/profile", h.getProfile).Methods("GET")
	dash.HandleFunc("/profile", h.updateProfile).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "testqr",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
