package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/connecting"
	"github.com/vfg2006/ad-extractor-api/pkg/apiErrors"
)

func CreateConnection(service connecting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateConnectionRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		connection, err := service.CreateConnection(r.Context(), &req)
		if err != nil {
			handleConnectionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(connection)
	}
}

func ListConnections(service connecting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connections, err := service.ListConnections()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar conexões", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"connections": connections,
			"total":       len(connections),
		})
	}
}

func GetConnection(service connecting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		connection, err := service.GetConnection(params.ByName("id"))
		if err != nil {
			handleConnectionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(connection)
	}
}

func UpdateConnection(service connecting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		var req domain.UpdateConnectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = params.ByName("id")

		if err := service.UpdateConnection(r.Context(), &req); err != nil {
			handleConnectionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteConnection(service connecting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		if err := service.DeleteConnection(params.ByName("id")); err != nil {
			handleConnectionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleConnectionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, connecting.ErrConnectionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrConnectionNotFound, "Conexão não encontrada", nil)
	case errors.Is(err, connecting.ErrConnectionExists):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta já conectada", nil)
	case errors.Is(err, connecting.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Conta e token de acesso são obrigatórios", nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
	}
}
