package server

import (
	"encoding/json"
	"net/http"

	"naijawalls/internal/store"
)

type ListResponse struct {
	Data []store.Wallpaper `json:"data"`
}

type PurchaseResponse struct {
	Success       bool   `json:"success"`
	PurchaseID    string `json:"purchaseId"`
	TransactionID string `json:"transactionId"`
}

type GenerateResponse struct {
	Success     bool   `json:"success"`
	URL         string `json:"url"`
	Message     string `json:"message,omitempty"`
	Substituted bool   `json:"substituted,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	b, _ := json.Marshal(v)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
