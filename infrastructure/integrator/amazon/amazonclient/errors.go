package amazonclient

import "errors"

// Erros sentinela usados pelo orquestrador para classificar falhas remotas
var (
	// ErrRateLimited indica resposta 429 da Amazon Ads API
	ErrRateLimited = errors.New("limite de requisições da Amazon Ads API atingido")

	// ErrUnauthorized indica credenciais rejeitadas (401/403)
	ErrUnauthorized = errors.New("credenciais rejeitadas pela Amazon Ads API")

	// ErrReportCreationFailed indica que a Amazon recusou a criação do relatório
	ErrReportCreationFailed = errors.New("falha ao criar relatório de performance")

	// ErrReportTimeout indica que o relatório não ficou pronto dentro do
	// número máximo de tentativas de polling
	ErrReportTimeout = errors.New("relatório de performance não ficou pronto a tempo")
)
