package remote

import (
	"context"
	"fmt"
	"net/http"

	"datalab/internal/ratelimit"
)

// Statement identifies one of the three financial statements attached to a report
type Statement string

const (
	StatementBalanceSheet    Statement = "balance-sheet"
	StatementIncomeStatement Statement = "income-statement"
	StatementCashFlow        Statement = "cash-flow"
)

// StatementItems retrieves the line items of the given statement for a report
func (c *Client) StatementItems(ctx context.Context, reportID int, statement Statement) ([]StatementItem, error) {
	switch statement {
	case StatementBalanceSheet, StatementIncomeStatement, StatementCashFlow:
	default:
		return nil, NewValidationError(fmt.Sprintf("unknown statement %q", statement))
	}

	var items []StatementItem
	err := c.do(ctx, call{
		op:     ratelimit.OpQuery,
		method: http.MethodGet,
		path:   fmt.Sprintf("/financial/reports/%d/%s", reportID, statement),
		out:    &items,
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// BalanceSheet retrieves the balance sheet items for a report
func (c *Client) BalanceSheet(ctx context.Context, reportID int) ([]StatementItem, error) {
	return c.StatementItems(ctx, reportID, StatementBalanceSheet)
}

// IncomeStatement retrieves the income statement items for a report
func (c *Client) IncomeStatement(ctx context.Context, reportID int) ([]StatementItem, error) {
	return c.StatementItems(ctx, reportID, StatementIncomeStatement)
}

// CashFlow retrieves the cash flow statement items for a report
func (c *Client) CashFlow(ctx context.Context, reportID int) ([]StatementItem, error) {
	return c.StatementItems(ctx, reportID, StatementCashFlow)
}
