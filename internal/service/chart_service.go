package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/internal/repository"
)

// ChartTransactionReader is the slice of transaction access the chart needs.
type ChartTransactionReader interface {
	TotalsByCategory(ctx context.Context, userID uuid.UUID) ([]repository.CategoryTotal, error)
}

// ChartService aggregates a user's transactions into chart-ready buckets.
type ChartService struct {
	transactions ChartTransactionReader
}

func NewChartService(transactions ChartTransactionReader) *ChartService {
	return &ChartService{transactions: transactions}
}

// Data sums the user's transactions per category and buckets each total by
// the category's kind. Accumulation happens in the store as fixed-point
// decimals; the float conversion is done here, at the output boundary, once
// per category. Categories with no transactions never appear.
func (s *ChartService) Data(ctx context.Context, userID uuid.UUID) (*model.ChartData, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}

	totals, err := s.transactions.TotalsByCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("aggregating category totals: %w", err)
	}

	data := &model.ChartData{
		Incomes:  []model.ChartItem{},
		Expenses: []model.ChartItem{},
	}
	for _, t := range totals {
		item := model.ChartItem{Category: t.Category, Total: t.Total.InexactFloat64()}
		switch t.Kind {
		case model.CategoryKindIncome:
			data.Incomes = append(data.Incomes, item)
		case model.CategoryKindExpense:
			data.Expenses = append(data.Expenses, item)
		}
	}

	return data, nil
}
