package coherence

import (
	"fmt"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

const keyPrefix = "ledger:user:"

// userNamespace is the common prefix of every entry derived from one user's ledger state
func userNamespace(userID uuid.UUID) string {
	return keyPrefix + userID.String() + ":"
}

// AccountsKey is the key of a user's account summary list
func AccountsKey(userID uuid.UUID) string {
	return userNamespace(userID) + "accounts"
}

// HistoryKey is the key of one history page. The filter must already be normalized.
func HistoryKey(filter entity.HistoryFilter) string {
	account := "all"
	if filter.AccountID != nil {
		account = filter.AccountID.String()
	}

	txType := "all"
	if filter.Type != "" {
		txType = string(filter.Type)
	}

	return fmt.Sprintf("%stransactions:%s:%d:%d:%s",
		userNamespace(filter.UserID), account, filter.Limit, filter.Offset, txType)
}

// invalidationPattern matches every key under the user's namespace
func invalidationPattern(userID uuid.UUID) string {
	return userNamespace(userID) + "*"
}
