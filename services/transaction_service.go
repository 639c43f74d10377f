package services

import (
	"context"
	"lifehub/models"
)

// TransactionService handles business logic for budget transactions
type TransactionService struct {
	repo TransactionRepository
}

func NewTransactionService(repo TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

func (ts *TransactionService) List(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return ts.repo.GetTransactions(ctx, userID)
}

func (ts *TransactionService) Get(ctx context.Context, userID, transactionID int64) (*models.Transaction, error) {
	return fetch(ctx, ts.repo.GetTransaction, transactionID, userID)
}

func (ts *TransactionService) Create(ctx context.Context, userID int64, req models.CreateTransactionRequest) (*models.Transaction, error) {
	t := &models.Transaction{
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date.UTC(),
		IsIncome:    req.IsIncome,
	}
	if err := ts.repo.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (ts *TransactionService) Update(ctx context.Context, userID, transactionID int64, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	t, err := fetch(ctx, ts.repo.GetTransaction, transactionID, userID)
	if err != nil {
		return nil, err
	}

	set(&t.Amount, req.Amount)
	set(&t.Description, req.Description)
	set(&t.Category, req.Category)
	set(&t.IsIncome, req.IsIncome)
	if req.Date != nil {
		t.Date = req.Date.UTC()
	}

	if err := ts.repo.UpdateTransaction(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (ts *TransactionService) Delete(ctx context.Context, userID, transactionID int64) error {
	return remove(ctx, ts.repo.GetTransaction, ts.repo.DeleteTransaction, transactionID, userID)
}
