package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
	"github.com/AbdulrahmanTurki/testQR/internal/service"
)

// --- auth ---

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := h.Auth.Signup(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	token, err := h.Auth.Signin(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// --- customer menu and order placement ---

func (h *Handler) publicMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["userId"]

	menu, err := h.Menu.PublicMenu(restaurantID)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var input struct {
		RestaurantID string            `json:"restaurant_id"`
		TableName    string            `json:"table_name"`
		Cart         []domain.CartItem `json:"cart"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if input.RestaurantID == "" {
		writeError(w, http.StatusBadRequest, "restaurant_id is required")
		return
	}

	orderID, err := h.Orders.PlaceOrder(r.Context(), input.RestaurantID, input.TableName, input.Cart)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingTable), errors.Is(err, service.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int{"order_id": orderID})
}

// --- kitchen display ---

func (h *Handler) activeOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListActive(userIDFrom(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	err = h.Orders.UpdateStatus(r.Context(), userIDFrom(r.Context()), orderID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidTransition):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": input.Status})
}

// --- menu management ---

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(userIDFrom(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := h.Menu.Create(userIDFrom(r.Context()), &item); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingMenuItemName), errors.Is(err, service.ErrNegativePrice):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	item.ID = id

	if err := h.Menu.Update(userIDFrom(r.Context()), &item); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingMenuItemName), errors.Is(err, service.ErrNegativePrice):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrMenuItemNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	if err := h.Menu.Delete(userIDFrom(r.Context()), id); err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- qr codes ---

func (h *Handler) listQRCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.QR.List(userIDFrom(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, codes)
}

func (h *Handler) createQRCode(w http.ResponseWriter, r *http.Request) {
	var input struct {
		TableName string `json:"table_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	code, err := h.QR.Create(userIDFrom(r.Context()), input.TableName)
	if err != nil {
		if errors.Is(err, service.ErrMissingTable) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, code)
}

func (h *Handler) qrCodeImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid qr code id")
		return
	}

	png, err := h.QR.Image(userIDFrom(r.Context()), id)
	if err != nil {
		if errors.Is(err, service.ErrQRCodeNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) deleteQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid qr code id")
		return
	}

	if err := h.QR.Delete(userIDFrom(r.Context()), id); err != nil {
		if errors.Is(err, service.ErrQRCodeNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- analytics ---

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Analytics.Summary(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// --- profile ---

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Profiles.Get(userIDFrom(r.Context()))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	profile.ID = userIDFrom(r.Context())

	if err := h.Profiles.Update(profile); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
