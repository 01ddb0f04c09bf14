package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-shop-api/internal/domain/rules"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/ports/storage"
)

// DetailResponse es el cuerpo de acks y errores: {"detail": "..."}.
type DetailResponse struct {
	Detail string `json:"detail"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, DetailResponse{Detail: msg})
}

// Error traduce rechazos de negocio a su status; el resto es 500 y se loguea como error.
func Error(w http.ResponseWriter, log logger.Logger, err error) {
	if _, ok := rules.KindOf(err); ok {
		Detail(w, rules.HTTPStatus(err), err.Error())
		return
	}
	log.Error("internal error", map[string]any{"error": err.Error()})
	Detail(w, http.StatusInternalServerError, "internal error")
}

// DecodeJSON lee el body; JSON inválido es 422.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return rules.Unprocessable("invalid json: %s", err.Error())
	}
	return nil
}

// PathID parsea un parámetro de ruta entero.
func PathID(r *http.Request, name string) (int64, error) {
	return parseID(name, chi.URLParam(r, name))
}

// QueryID parsea un query param entero obligatorio.
func QueryID(r *http.Request, name string) (int64, error) {
	return parseID(name, r.URL.Query().Get(name))
}

// QueryString devuelve el query param recortado y si vino en el request.
func QueryString(r *http.Request, name string) (string, bool) {
	q := r.URL.Query()
	if !q.Has(name) {
		return "", false
	}
	return strings.TrimSpace(q.Get(name)), true
}

// QueryRequired es QueryString pero falla si el param no vino; vacío sí vale.
func QueryRequired(r *http.Request, name string) (string, error) {
	v, ok := QueryString(r, name)
	if !ok {
		return "", rules.Unprocessable("%s is required", name)
	}
	return v, nil
}

// QueryPage lee skip/limit (defaults 0 y defaultLimit).
func QueryPage(r *http.Request, defaultLimit int) (storage.Page, error) {
	if defaultLimit <= 0 {
		defaultLimit = storage.DefaultLimit
	}
	page := storage.Page{Skip: 0, Limit: defaultLimit}

	q := r.URL.Query()
	if raw := strings.TrimSpace(q.Get("skip")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return storage.Page{}, rules.Unprocessable("skip must be an integer")
		}
		page.Skip = n
	}
	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return storage.Page{}, rules.Unprocessable("limit must be an integer")
		}
		page.Limit = n
	}
	return page, nil
}

func parseID(name, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, rules.Unprocessable("%s is required", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, rules.Unprocessable("%s is out of range", name)
		}
		return 0, rules.Unprocessable("%s must be an integer", name)
	}
	return id, nil
}
