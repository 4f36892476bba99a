package services

import (
	"fmt"

	"github.com/openbooks/general_ledger_app/internal/apperrors"
	"github.com/openbooks/general_ledger_app/internal/core/domain"
)

// Typed validation failures. Each wraps apperrors.ErrValidation so callers can
// match either the specific kind or the broad category with errors.Is.
var (
	ErrTooFewLines              = fmt.Errorf("%w: transaction must have at least two lines", apperrors.ErrValidation)
	ErrUnbalancedTransaction    = fmt.Errorf("%w: transaction lines do not sum to zero", apperrors.ErrValidation)
	ErrDuplicateLineNumber      = fmt.Errorf("%w: duplicate line number within transaction", apperrors.ErrValidation)
	ErrDanglingAccountReference = fmt.Errorf("%w: line references an unknown account", apperrors.ErrValidation)
	ErrDanglingPlayerReference  = fmt.Errorf("%w: line references an unknown player", apperrors.ErrValidation)
	ErrDanglingElementReference = fmt.Errorf("%w: account references an unknown element", apperrors.ErrValidation)
	ErrDuplicateKey             = fmt.Errorf("%w: number or name already used by another record", apperrors.ErrValidation)
)

// validateTransactionLines decides acceptance of a transaction aggregate
// before any write reaches storage. It is a pure check over the candidate
// lines and pre-fetched reference maps; it never mutates state.
//
// Amounts are exact decimals, so the balance check is an exact zero
// comparison rather than an epsilon test.
func validateTransactionLines(lines []domain.TransactionLine, accounts map[string]domain.Account, players map[string]domain.Player) error {
	if len(lines) < 2 {
		return ErrTooFewLines
	}

	seen := make(map[int32]struct{}, len(lines))
	for _, line := range lines {
		if _, dup := seen[line.LineNumber]; dup {
			return fmt.Errorf("%w: line %d", ErrDuplicateLineNumber, line.LineNumber)
		}
		seen[line.LineNumber] = struct{}{}

		if _, ok := accounts[line.AccountNumber]; !ok {
			return fmt.Errorf("%w: account %s", ErrDanglingAccountReference, line.AccountNumber)
		}
		if line.PlayerName != nil {
			if _, ok := players[*line.PlayerName]; !ok {
				return fmt.Errorf("%w: player %s", ErrDanglingPlayerReference, *line.PlayerName)
			}
		}
	}

	if !domain.LinesTotal(lines).IsZero() {
		return fmt.Errorf("%w: sum is %s", ErrUnbalancedTransaction, domain.LinesTotal(lines).String())
	}

	return nil
}

// validateAccount decides acceptance of an account before persistence.
// elementExists reflects a lookup of the referenced element; conflicting is a
// previously stored account with the same name (or nil).
func validateAccount(account domain.Account, elementExists bool, conflicting *domain.Account) error {
	if !elementExists {
		return fmt.Errorf("%w: element %d", ErrDanglingElementReference, account.ElementNumber)
	}
	if conflicting != nil && conflicting.Number != account.Number {
		return fmt.Errorf("%w: name %q belongs to account %s", ErrDuplicateKey, account.Name, conflicting.Number)
	}
	return nil
}
