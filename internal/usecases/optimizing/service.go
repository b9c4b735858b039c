package optimizing

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/robotads/robotads-api/infrastructure/integrator/amazon/amazonclient"
	"github.com/robotads/robotads-api/infrastructure/repository"
	"github.com/robotads/robotads-api/internal/config"
	"github.com/robotads/robotads-api/internal/domain"
	"github.com/robotads/robotads-api/internal/usecases/tokening"
)

// Optimizer roda o ciclo completo de otimização de uma conta: token válido,
// regras ativas do dono, avaliação de condições, execução e auditoria
type Optimizer interface {
	OptimizeAccount(account *domain.Account) error
}

// errRuleHadFailures sinaliza falha parcial de ações dentro de uma regra.
// Não altera o status da conta nem impede as regras seguintes.
var errRuleHadFailures = errors.New("regra executada com ações em falha")

type Service struct {
	platform    AdsPlatform
	tokens      tokening.TokenManager
	accountRepo repository.AccountRepository
	ruleRepo    repository.RuleRepository
	executor    *Executor
	audit       *AuditLogger

	// injetável nos testes
	now func() time.Time
}

func NewService(
	cfg *config.Config,
	platform AdsPlatform,
	tokens tokening.TokenManager,
	accountRepo repository.AccountRepository,
	ruleRepo repository.RuleRepository,
	logRepo repository.OptimizationLogRepository,
) *Service {
	return &Service{
		platform:    platform,
		tokens:      tokens,
		accountRepo: accountRepo,
		ruleRepo:    ruleRepo,
		executor:    NewExecutor(cfg, platform),
		audit:       NewAuditLogger(logRepo),
		now:         time.Now,
	}
}

// OptimizeAccount processa as regras do dono da conta em ordem de prioridade.
// Cada regra é isolada: a falha de uma não impede as demais, exceto limite de
// requisições ou credencial rejeitada, que encerram o ciclo da conta.
func (s *Service) OptimizeAccount(account *domain.Account) error {
	if account.Status.SkipsOptimization() {
		return fmt.Errorf("%w: status %s", ErrAccountNotOptimizable, account.Status)
	}

	refreshed, err := s.tokens.EnsureValidToken(account)
	if err != nil {
		if errors.Is(err, tokening.ErrTokenRefreshFailed) {
			s.setStatus(account.ID, domain.AccountStatusReauthRequired)
		}
		return err
	}
	account = refreshed

	rules, err := s.ruleRepo.ListEnabledByUser(account.UserID)
	if err != nil {
		return err
	}

	cache := make(map[string]map[string]*domain.PerformanceSnapshot)

	var accountErr error

rulesLoop:
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			logrus.WithFields(logrus.Fields{
				"rule_id": rule.ID,
				"error":   err.Error(),
			}).Warn("optimization: skipping invalid rule")
			continue
		}

		if !rule.Due(s.now()) {
			continue
		}

		err := s.runRule(account, rule, cache)
		if err == nil {
			continue
		}

		accountErr = err

		switch {
		case errors.Is(err, amazonclient.ErrRateLimited):
			s.setStatus(account.ID, domain.AccountStatusErrorRateLimit)
			break rulesLoop
		case errors.Is(err, amazonclient.ErrUnauthorized):
			s.setStatus(account.ID, domain.AccountStatusReauthRequired)
			break rulesLoop
		case errors.Is(err, errRuleHadFailures):
			// falha parcial: segue para as próximas regras sem mexer no status
		default:
			s.setStatus(account.ID, domain.AccountStatusErrorSync)
		}
	}

	// O fim do ciclo é registrado mesmo com falhas parciais: o intervalo
	// mínimo entre ciclos vale para qualquer tentativa.
	if err := s.accountRepo.UpdateLastOptimizedAt(account.ID, s.now()); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("optimization: failed to update last optimization timestamp")
	}

	// Status de erro nunca é desfeito aqui: a volta para "active" acontece
	// apenas pela revinculação manual da conta. O motor só avança para
	// estados de erro.
	return accountErr
}

func (s *Service) setStatus(accountID string, status domain.AccountStatus) {
	if err := s.accountRepo.UpdateStatus(accountID, status); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"status":     status,
			"error":      err.Error(),
		}).Error("optimization: failed to update account status")
	}
}

func (s *Service) runRule(account *domain.Account, rule *domain.Rule, cache map[string]map[string]*domain.PerformanceSnapshot) error {
	snapshots, err := s.snapshotsForRule(account, rule, cache)
	if err != nil {
		return err
	}

	// A primeira condição define o universo de entidades avaliadas; as
	// demais janelas só participam da checagem de condições.
	entities := snapshots[rule.Conditions[0].Window()]

	entityIDs := make([]string, 0, len(entities))
	for entityID := range entities {
		entityIDs = append(entityIDs, entityID)
	}
	sort.Strings(entityIDs)

	matched := 0
	failures := 0
	for _, entityID := range entityIDs {
		snapshot := entities[entityID]

		if !rule.MatchesCampaign(snapshot.CampaignID) {
			continue
		}

		if !EvaluateConditions(entityID, rule.Conditions, snapshots) {
			continue
		}

		matched++

		results := s.executor.Execute(account, rule, snapshot)
		for _, result := range results {
			s.audit.Record(account, rule, snapshot, result)

			if result.Err == nil {
				continue
			}

			failures++

			if errors.Is(result.Err, amazonclient.ErrRateLimited) || errors.Is(result.Err, amazonclient.ErrUnauthorized) {
				return result.Err
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"rule_id":    rule.ID,
		"rule_name":  rule.Name,
		"matched":    matched,
		"failures":   failures,
	}).Info("optimization: rule evaluated")

	// A regra rodou até o fim: o last_run é gravado mesmo com falhas
	// parciais, senão uma palavra-chave instável faria a regra ignorar a
	// própria frequência e redisparar a cada ciclo
	if err := s.ruleRepo.UpdateLastRun(rule.ID, s.now()); err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id": rule.ID,
			"error":   err.Error(),
		}).Error("optimization: failed to update rule last run")
	}

	if failures > 0 {
		return fmt.Errorf("%w: regra %s com %d falhas", errRuleHadFailures, rule.ID, failures)
	}

	return nil
}

// snapshotsForRule resolve as janelas de análise exigidas pelas condições da
// regra, reutilizando o cache do ciclo: cada par (entidade, janela) gera no
// máximo uma rodada de relatórios por conta
func (s *Service) snapshotsForRule(account *domain.Account, rule *domain.Rule, cache map[string]map[string]*domain.PerformanceSnapshot) (SnapshotSet, error) {
	set := make(SnapshotSet)

	for _, condition := range rule.Conditions {
		window := condition.Window()
		if _, ok := set[window]; ok {
			continue
		}

		key := fmt.Sprintf("%s:%d", rule.TargetEntity, window)

		snapshots, ok := cache[key]
		if !ok {
			var err error
			snapshots, err = s.platform.FetchSnapshots(account, rule.TargetEntity, window)
			if err != nil {
				return nil, err
			}
			cache[key] = snapshots
		}

		set[window] = snapshots
	}

	return set, nil
}
