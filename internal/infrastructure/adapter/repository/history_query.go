package repository

import (
	"strings"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
)

const (
	transactionViewColumns = `t.id, t.reference_number, t.from_account_id, t.to_account_id, ` +
		`t.transaction_type, t.amount, t.currency, t.status, t.description, t.balance_after, t.created_at, ` +
		`fa.account_number AS from_account_number, ta.account_number AS to_account_number, ` +
		`CONCAT_WS(' ', fu.first_name, fu.last_name) AS from_account_holder, ` +
		`CONCAT_WS(' ', tu.first_name, tu.last_name) AS to_account_holder`

	transactionViewJoins = `FROM transactions t ` +
		`LEFT JOIN accounts fa ON fa.id = t.from_account_id ` +
		`LEFT JOIN accounts ta ON ta.id = t.to_account_id ` +
		`LEFT JOIN users fu ON fu.id = fa.user_id ` +
		`LEFT JOIN users tu ON tu.id = ta.user_id`

	// ownershipPredicate keeps rows where the user owns at least one side
	ownershipPredicate = `(fa.user_id = ? OR ta.user_id = ?)`
)

// HistoryQuery composes the SQL of one history page. Predicates are appended in
// a fixed order: ownership, then account, then type.
type HistoryQuery struct {
	filter     entity.HistoryFilter
	predicates []string
	args       []any
}

// NewHistoryQuery creates a query for a normalized filter
func NewHistoryQuery(filter entity.HistoryFilter) *HistoryQuery {
	q := &HistoryQuery{filter: filter}

	q.where(ownershipPredicate, filter.UserID, filter.UserID)
	if filter.AccountID != nil {
		q.where("(t.from_account_id = ? OR t.to_account_id = ?)", *filter.AccountID, *filter.AccountID)
	}
	if filter.Type != "" {
		q.where("t.transaction_type = ?", string(filter.Type))
	}
	return q
}

func (q *HistoryQuery) where(predicate string, args ...any) {
	q.predicates = append(q.predicates, predicate)
	q.args = append(q.args, args...)
}

func (q *HistoryQuery) whereClause() string {
	return " WHERE " + strings.Join(q.predicates, " AND ")
}

// Build returns the page query and its arguments
func (q *HistoryQuery) Build() (string, []any) {
	sql := "SELECT " + transactionViewColumns + " " + transactionViewJoins + q.whereClause() +
		" ORDER BY t.created_at DESC LIMIT ? OFFSET ?"

	args := make([]any, 0, len(q.args)+2)
	args = append(args, q.args...)
	args = append(args, q.filter.Limit, q.filter.Offset)
	return sql, args
}

// Count returns the query counting every row the filter matches, ignoring paging
func (q *HistoryQuery) Count() (string, []any) {
	sql := "SELECT COUNT(*) " + transactionViewJoins + q.whereClause()
	return sql, append([]any(nil), q.args...)
}

// transactionByIDQuery returns the detail query for one transaction visible to userID
func transactionByIDQuery() string {
	return "SELECT " + transactionViewColumns + " " + transactionViewJoins +
		" WHERE t.id = ? AND " + ownershipPredicate
}
