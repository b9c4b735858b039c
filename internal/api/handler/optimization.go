package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/robotads/robotads-api/infrastructure/repository"
	"github.com/robotads/robotads-api/internal/domain"
	"github.com/robotads/robotads-api/internal/scheduler"
	"github.com/robotads/robotads-api/pkg/apiErrors"
	"github.com/robotads/robotads-api/pkg/utils"
)

// OptimizationServices contém os serviços necessários para operar o ciclo de
// otimização pela API
type OptimizationServices struct {
	SyncService *scheduler.OptimizationSyncService
	LogRepo     repository.OptimizationLogRepository
}

type runOptimizationRequest struct {
	AccountID string `json:"account_id"`
}

// RunOptimization dispara manualmente um ciclo de otimização. O corpo pode
// indicar uma conta específica; vazio roda para todas as contas elegíveis.
func RunOptimization(services OptimizationServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunOptimization")

		if services.SyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de otimização não disponível", nil)
			return
		}

		var request runOptimizationRequest
		if r.Body != nil {
			// Corpo vazio é aceito: roda o ciclo completo
			_ = json.NewDecoder(r.Body).Decode(&request)
		}

		started := services.SyncService.TriggerManualSync(request.AccountID)

		w.Header().Set("Content-Type", "application/json")

		if !started {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]any{
				"message": "Ciclo de otimização já em andamento",
				"started": false,
			})
			return
		}

		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message":    "Ciclo de otimização iniciado com sucesso",
			"started":    true,
			"account_id": request.AccountID,
		})
	}
}

// GetOptimizationStatus retorna o status do agendador do ciclo de otimização
func GetOptimizationStatus(services OptimizationServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetOptimizationStatus")

		if services.SyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de otimização não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(services.SyncService.GetStatus())
	}
}

// ListOptimizationLogs retorna a trilha de auditoria das ações executadas,
// sempre restrita ao usuário autenticado
func ListOptimizationLogs(services OptimizationServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não identificado", nil)
			return
		}

		filter := &domain.OptimizationLogFilter{
			UserID:    userID,
			AccountID: r.URL.Query().Get("account_id"),
			RuleID:    r.URL.Query().Get("rule_id"),
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start_date inválido", nil)
			return
		}
		filter.StartDate = startDate

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end_date inválido", nil)
			return
		}
		filter.EndDate = endDate

		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			limit, err := strconv.ParseUint(limitParam, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			filter.Limit = limit
		}

		logs, err := services.LogRepo.List(filter)
		if err != nil {
			logrus.Error("Error listing optimization logs:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar trilha de auditoria", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(logs); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
