package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/robotads/robotads-api/internal/domain"
	"github.com/robotads/robotads-api/internal/usecases/ruling"
	"github.com/robotads/robotads-api/pkg/apiErrors"
	"github.com/robotads/robotads-api/pkg/middleware"
)

// userIDFromContext extrai o ID do usuário autenticado colocado no contexto
// pelo middleware de autenticação
func userIDFromContext(r *http.Request) (int, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok || claims == nil {
		return 0, false
	}
	return claims.UserID, true
}

func writeRuleError(w http.ResponseWriter, err error, fallbackMessage string) {
	var ruleErr *ruling.RuleError
	if errors.As(err, &ruleErr) {
		apiErrors.WriteError(w, ruleErr.Code, ruleErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
}

func ListRules(service ruling.RuleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não identificado", nil)
			return
		}

		rules, err := service.ListRules(userID)
		if err != nil {
			logrus.Error("Error listing rules:", err)
			writeRuleError(w, err, "Erro ao listar regras")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(rules); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetRule(service ruling.RuleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não identificado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		rule, err := service.GetRule(userID, id)
		if err != nil {
			logrus.Error("Error getting rule:", err)
			writeRuleError(w, err, "Erro ao buscar regra")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(rule); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateRule(service ruling.RuleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateRule")

		userID, ok := userIDFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não identificado", nil)
			return
		}

		var rule domain.Rule
		if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Regras são sempre criadas em nome do usuário autenticado
		rule.UserID = userID

		created, err := service.CreateRule(&rule)
		if err != nil {
			logrus.Error("Error creating rule:", err)
			writeRuleError(w, err, "Erro ao criar regra")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(created); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateRule(service ruling.RuleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateRule")

		userID, ok := userIDFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não identificado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da regra é obrigatório", nil)
			return
		}

		var rule domain.Rule
		if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL e o usuário do token sejam usados
		rule.ID = id
		rule.UserID = userID

		updated, err := service.UpdateRule(&rule)
		if err != nil {
			logrus.Error("Error updating rule:", err)
			writeRuleError(w, err, "Erro ao atualizar regra")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteRule(service ruling.RuleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteRule")

		userID, ok := userIDFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não identificado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da regra é obrigatório", nil)
			return
		}

		if err := service.DeleteRule(userID, id); err != nil {
			logrus.Error("Error deleting rule:", err)
			writeRuleError(w, err, "Erro ao excluir regra")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
