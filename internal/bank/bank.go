// internal/bank/bank.go

// Package bank 定義核心商業邏輯：開戶、存款、提款、餘額查詢與帳戶列表。
// Ledger 為單一行程內的記憶體帳本，程式結束即捨棄，不做持久化。
// 所有操作在同一把互斥鎖 (sync.Mutex) 內完成「檢查 → 變更」，
// 任一檢查失敗都不會留下部分變更。
// 金額以 money.Amount（int64 分）儲存，避免浮點誤差。
package bank

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"simplebank/internal/logging"
	"simplebank/internal/money"
)

// Ledger 為聚合根 (Aggregate Root)：管理帳本內所有帳戶。
// - mu：序列化所有讀寫。
// - last：最後一個已配發的帳號；單調遞增，與帳戶數量無關，帳號永不重用。
// - accts：帳號 → 帳戶；內部指標只在臨界區內修改，不外流。
type Ledger struct {
	mu     sync.Mutex
	last   AccountNumber
	accts  map[AccountNumber]*Account
	logger *slog.Logger
}

// NewLedger 建立空白帳本。logger 可為 nil。
func NewLedger(logger *slog.Logger) *Ledger {
	return &Ledger{
		accts:  make(map[AccountNumber]*Account),
		logger: logging.Default(logger).With("component", "ledger"),
	}
}

// Create 以戶名與初始餘額開戶，回傳新帳戶的值拷貝（含配發的帳號）。
// 戶名會去除前後空白，結果不得為空；初始餘額不得為負（可為 0）。
func (l *Ledger) Create(name string, initial money.Amount) (Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Account{}, ErrInvalidName
	}
	if initial < 0 {
		return Account{}, fmt.Errorf("create account with %s: %w", initial, ErrNegativeAmount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.last++
	a := &Account{Number: l.last, Name: name, Balance: initial}
	l.accts[a.Number] = a

	l.logger.Debug("account created", "account", a.Number, "balance", initial.String())
	return *a, nil
}

// Get 依帳號取得帳戶的目前快照；不存在回傳 ErrAccountNotFound。
func (l *Ledger) Get(n AccountNumber) (Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := l.lookup(n)
	if err != nil {
		return Account{}, err
	}
	return *a, nil
}

// Balance 回傳帳戶目前餘額。
func (l *Ledger) Balance(n AccountNumber) (money.Amount, error) {
	a, err := l.Get(n)
	if err != nil {
		return 0, err
	}
	return a.Balance, nil
}

// List 回傳所有帳戶的值拷貝，依帳號遞增排序。
func (l *Ledger) List() []Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Account, 0, len(l.accts))
	for _, a := range l.accts {
		out = append(out, *a)
	}
	slices.SortFunc(out, func(x, y Account) int { return cmp.Compare(x.Number, y.Number) })
	return out
}

// Len 回傳帳戶數量。
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.accts)
}

// Deposit 存款：金額需 > 0；回傳存款後餘額。
// 金額檢查先於帳戶查詢。存款後餘額超出可表示範圍時回傳 *BalanceOverflowError。
func (l *Ledger) Deposit(n AccountNumber, amt money.Amount) (money.Amount, error) {
	if amt <= 0 {
		return 0, fmt.Errorf("deposit %s: %w", amt, ErrInvalidAmount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := l.lookup(n)
	if err != nil {
		return 0, err
	}
	bal, ok := a.Balance.Add(amt)
	if !ok {
		return 0, &BalanceOverflowError{Account: n, Amount: amt, Balance: a.Balance}
	}
	a.Balance = bal

	l.logger.Debug("deposit", "account", n, "amount", amt.String(), "balance", bal.String())
	return bal, nil
}

// Withdraw 提款：金額需 > 0 且不得超過餘額；全有或全無，不做部分提款。
// 餘額不足時回傳 *InsufficientFundsError，內含檢查當下的可用餘額。
func (l *Ledger) Withdraw(n AccountNumber, amt money.Amount) (money.Amount, error) {
	if amt <= 0 {
		return 0, fmt.Errorf("withdraw %s: %w", amt, ErrInvalidAmount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := l.lookup(n)
	if err != nil {
		return 0, err
	}
	if a.Balance < amt {
		return 0, &InsufficientFundsError{Account: n, Requested: amt, Available: a.Balance}
	}
	a.Balance -= amt

	l.logger.Debug("withdraw", "account", n, "amount", amt.String(), "balance", a.Balance.String())
	return a.Balance, nil
}

// lookup 需在持有 mu 時呼叫。
func (l *Ledger) lookup(n AccountNumber) (*Account, error) {
	a, ok := l.accts[n]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", n, ErrAccountNotFound)
	}
	return a, nil
}
