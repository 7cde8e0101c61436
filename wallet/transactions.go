package wallet

// Read-only projections over the transaction list. Nothing here mutates the
// store.

// Transactions returns a snapshot of the transaction list, newest first
func (s *Store) Transactions() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// FilterTransactions returns transactions matching the given direction and
// status. An empty direction or status matches everything.
func (s *Store) FilterTransactions(direction TransactionDirection, status TransactionStatus) []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if direction != "" && tx.Direction != direction {
			continue
		}
		if status != "" && tx.Status != status {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// TransactionByID looks up a transaction by id. A missing id is a distinct
// not-found state, not an error.
func (s *Store) TransactionByID(id string) (Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}
