package optimizing

import "errors"

var (
	// ErrMissingCurrentBid indica que a entidade não tem lance conhecido para
	// um ajuste relativo (percentual ou valor absoluto)
	ErrMissingCurrentBid = errors.New("lance atual da entidade é desconhecido")

	// ErrMissingCurrentBudget indica que a campanha não tem orçamento diário
	// conhecido para um ajuste relativo
	ErrMissingCurrentBudget = errors.New("orçamento diário atual da campanha é desconhecido")

	// ErrUnsupportedAction indica uma combinação de ação e entidade que o
	// executor não sabe aplicar
	ErrUnsupportedAction = errors.New("ação não suportada para o tipo de entidade")

	// ErrAccountNotFound indica conta inexistente em um disparo manual
	ErrAccountNotFound = errors.New("conta não encontrada")

	// ErrAccountNotOptimizable indica conta em status que bloqueia o ciclo
	ErrAccountNotOptimizable = errors.New("conta não elegível para otimização")
)
