// Package memory provides an in-memory implementation of the repository
// ports. It backs local development when no database is configured, and
// doubles as the storage used by end-to-end service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xylo-fin/xylo-backend/internal/apperrors"
	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	portsrepo "github.com/xylo-fin/xylo-backend/internal/core/ports/repositories"
	"github.com/xylo-fin/xylo-backend/internal/utils/pagination"
)

// Store holds all ledger state behind a single RWMutex. One lock for the
// whole store keeps SaveEntry trivially atomic: the header insert, the
// line inserts and the processed-flag flip happen under one write lock,
// so readers never observe a half-applied posting.
type Store struct {
	mu sync.RWMutex

	accounts     map[string]domain.Account
	transactions map[string]domain.Transaction
	entries      map[string]domain.JournalEntry
	lines        map[string][]domain.JournalLine // keyed by entry ID
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts:     make(map[string]domain.Account),
		transactions: make(map[string]domain.Transaction),
		entries:      make(map[string]domain.JournalEntry),
		lines:        make(map[string][]domain.JournalLine),
	}
}

// Ensure Store implements every repository port
var (
	_ portsrepo.ChartRepositoryFacade       = (*Store)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.JournalRepositoryFacade     = (*Store)(nil)
	_ portsrepo.ReportingRepository         = (*Store)(nil)
)

// NewRepositoryProvider wraps a single store as the full repository set.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ChartRepo:       store,
		TransactionRepo: store,
		JournalRepo:     store,
		ReportingRepo:   store,
	}
}

// --- ChartRepositoryFacade ---

func (s *Store) SaveAccountIfAbsent(_ context.Context, account domain.Account) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.Code]; exists {
		return false, nil
	}
	s.accounts[account.Code] = account
	return true, nil
}

func (s *Store) FindAccountByCode(_ context.Context, code string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[code]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &account, nil
}

func (s *Store) ListAccounts(_ context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Code < accounts[j].Code
	})
	return accounts, nil
}

// --- TransactionRepositoryFacade ---

func (s *Store) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.transactions[txn.TransactionID]; exists {
		return apperrors.ErrDuplicate
	}
	s.transactions[txn.TransactionID] = txn
	return nil
}

func (s *Store) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txn, ok := s.transactions[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

func (s *Store) ListTransactions(_ context.Context, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	matched := make([]domain.Transaction, 0, len(s.transactions))
	for _, txn := range s.transactions {
		if matchesFilter(txn, filter) {
			matched = append(matched, txn)
		}
	}
	// Newest first, created_at as tie-breaker, matching the SQL backend.
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	start := 0
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		for i, txn := range matched {
			if txn.Date.Before(lastDate) || (txn.Date.Equal(lastDate) && txn.CreatedAt.Before(lastCreatedAt)) {
				start = i
				break
			}
			start = len(matched)
		}
	}

	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	page := matched[start:end]

	var nextTokenVal *string
	if end < len(matched) {
		last := page[len(page)-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
	}

	return append([]domain.Transaction{}, page...), nextTokenVal, nil
}

func matchesFilter(txn domain.Transaction, filter portsrepo.TransactionFilter) bool {
	if filter.From != nil && txn.Date.Before(*filter.From) {
		return false
	}
	if filter.To != nil && txn.Date.After(*filter.To) {
		return false
	}
	if filter.MinAmount != nil && txn.Amount.LessThan(*filter.MinAmount) {
		return false
	}
	if filter.Processed != nil && txn.Processed != *filter.Processed {
		return false
	}
	return true
}

// --- JournalRepositoryFacade ---

func (s *Store) SaveEntry(_ context.Context, entry domain.JournalEntry, lines []domain.JournalLine, markTransactionID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[entry.EntryID]; exists {
		return apperrors.ErrDuplicate
	}
	if markTransactionID != nil {
		txn, ok := s.transactions[*markTransactionID]
		if !ok {
			return apperrors.ErrNotFound
		}
		txn.Processed = true
		s.transactions[*markTransactionID] = txn
	}

	entry.Lines = nil
	s.entries[entry.EntryID] = entry
	s.lines[entry.EntryID] = append([]domain.JournalLine{}, lines...)
	return nil
}

func (s *Store) FindEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &entry, nil
}

func (s *Store) FindLinesByEntryID(_ context.Context, entryID string) ([]domain.JournalLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.JournalLine{}, s.lines[entryID]...), nil
}

// --- ReportingRepository ---

func (s *Store) GetTrialBalanceData(_ context.Context, from, to *time.Time) ([]domain.TrialBalanceRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]*domain.TrialBalanceRow)
	for entryID, lines := range s.lines {
		entry := s.entries[entryID]
		if from != nil && entry.EntryDate.Before(*from) {
			continue
		}
		if to != nil && entry.EntryDate.After(*to) {
			continue
		}
		for _, line := range lines {
			row, ok := totals[line.AccountCode]
			if !ok {
				row = &domain.TrialBalanceRow{
					AccountCode: line.AccountCode,
					TotalDebit:  decimal.Zero,
					TotalCredit: decimal.Zero,
				}
				if account, known := s.accounts[line.AccountCode]; known {
					name := account.Name
					accountType := account.Type
					row.AccountName = &name
					row.AccountType = &accountType
				}
				totals[line.AccountCode] = row
			}
			row.TotalDebit = row.TotalDebit.Add(line.Debit)
			row.TotalCredit = row.TotalCredit.Add(line.Credit)
		}
	}

	result := make([]domain.TrialBalanceRow, 0, len(totals))
	for _, row := range totals {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AccountCode < result[j].AccountCode
	})
	return result, nil
}
