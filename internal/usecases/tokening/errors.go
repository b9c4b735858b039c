package tokening

import "errors"

var (
	// ErrTokenRefreshFailed indica que a Amazon recusou a renovação do token.
	// A conta deve ir para reauth_required: só a revinculação manual resolve.
	ErrTokenRefreshFailed = errors.New("falha ao renovar token de acesso da conta")

	// ErrAccountWithoutToken indica conta sem refresh token cadastrado
	ErrAccountWithoutToken = errors.New("conta não possui refresh token cadastrado")
)
