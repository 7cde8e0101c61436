package wallet

import "time"

// MockTransactions returns the canned demo transaction list with timestamps
// relative to now, newest first. Ids and internal refs are stable so detail
// lookups work across reloads.
func MockTransactions(now time.Time) []Transaction {
	return []Transaction{
		{
			ID:        "tx-001",
			Direction: DirectionSent,
			Amount:    "50000000000000000000", // 50 cCOP
			AmountCOP: 50000,
			Token:     TokenCCOP,
			Counterparty: Counterparty{
				Address: "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0",
				Name:    "Maria García",
				Alias:   "@mariag",
			},
			Status:    StatusSettled,
			Timestamp: now.Add(-2 * time.Hour),
			Note:      "Pago almuerzo 🍕",
			Hashes: TransactionHashes{
				TxHash:      "0x1234...5678",
				BrebRef:     "BREB-2025-001234",
				InternalRef: "INT-001",
			},
			Fee: "100000000000000",
		},
		{
			ID:        "tx-002",
			Direction: DirectionReceived,
			Amount:    "150000000000000000000", // 150 cCOP
			AmountCOP: 150000,
			Token:     TokenCCOP,
			Counterparty: Counterparty{
				Address: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
				Name:    "Carlos Rodríguez",
				Alias:   "@carlosr",
			},
			Status:    StatusSettled,
			Timestamp: now.Add(-5 * time.Hour),
			Note:      "Pago por servicio",
			Hashes: TransactionHashes{
				TxHash:      "0x9876...4321",
				BrebRef:     "BREB-2025-001233",
				InternalRef: "INT-002",
			},
		},
		{
			ID:        "tx-003",
			Direction: DirectionSent,
			Amount:    "25000000000000000000", // 25 cCOP
			AmountCOP: 25000,
			Token:     TokenCCOP,
			Counterparty: Counterparty{
				Address: "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC",
				Alias:   "@tienda_local",
			},
			Status:    StatusSettled,
			Timestamp: now.Add(-24 * time.Hour),
			Hashes: TransactionHashes{
				TxHash:      "0xabcd...ef01",
				BrebRef:     "BREB-2025-001230",
				InternalRef: "INT-003",
			},
			Fee: "100000000000000",
		},
		{
			ID:        "tx-004",
			Direction: DirectionReceived,
			Amount:    "200000000000000000000", // 200 cCOP
			AmountCOP: 200000,
			Token:     TokenCCOP,
			Counterparty: Counterparty{
				Address: "0x90F79bf6EB2c4f870365E785982E1f101E93b906",
				Name:    "Ana Martínez",
			},
			Status:    StatusSettled,
			Timestamp: now.Add(-2 * 24 * time.Hour),
			Note:      "Reembolso",
			Hashes: TransactionHashes{
				TxHash:      "0xdef0...1234",
				BrebRef:     "BREB-2025-001225",
				InternalRef: "INT-004",
			},
		},
		{
			ID:        "tx-005",
			Direction: DirectionSent,
			Amount:    "75000000000000000000", // 75 cCOP
			AmountCOP: 75000,
			Token:     TokenCCOP,
			Counterparty: Counterparty{
				Address: "0x15d34AAf54267DB7D7c367839AAf71A00a2C6A65",
				Name:    "Supermercado El Ahorro",
			},
			Status:    StatusSettled,
			Timestamp: now.Add(-3 * 24 * time.Hour),
			Note:      "Compras del mes",
			Hashes: TransactionHashes{
				TxHash:      "0x5678...abcd",
				BrebRef:     "BREB-2025-001220",
				InternalRef: "INT-005",
			},
			Fee: "100000000000000",
		},
		{
			ID:        "tx-006",
			Direction: DirectionSent,
			Amount:    "10000000000000000000", // 10 cCOP
			AmountCOP: 10000,
			Token:     TokenCCOP,
			Counterparty: Counterparty{
				Address: "0x9965507D1a55bcC2695C58ba16FB37d819B0A4dc",
				Alias:   "@cafe_central",
			},
			Status:    StatusPending,
			Timestamp: now.Add(-10 * time.Minute),
			Note:      "Café ☕",
			Hashes: TransactionHashes{
				TxHash:      "0x1111...2222",
				InternalRef: "INT-006",
			},
			Fee: "100000000000000",
		},
	}
}
