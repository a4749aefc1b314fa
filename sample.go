package wallets

// Sample returns the built-in holdings shown when no holdings file is given.
func Sample() Holdings {
	hs, err := NewHoldings(
		Holding{
			ID:      "bitcoin",
			Name:    "Bitcoin",
			Symbol:  "BTC",
			Balance: Q(0.45),
			Value:   M(23621.89, DefaultCurrency),
			Address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			Color:   "#F7931A",
			Change:  3.15,
		},
		Holding{
			ID:      "ethereum",
			Name:    "Ethereum",
			Symbol:  "ETH",
			Balance: Q(3.25),
			Value:   M(9789.00, DefaultCurrency),
			Address: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			Color:   "#627EEA",
			Change:  -1.24,
		},
		Holding{
			ID:      "solana",
			Name:    "Solana",
			Symbol:  "SOL",
			Balance: Q(28.5),
			Value:   M(4051.35, DefaultCurrency),
			Address: "CXSq1UktW8BnUqxezSZ9G6QL8uQyYKN9BYR3qNfUjJcS",
			Color:   "#14F195",
			Change:  5.67,
		},
		Holding{
			ID:      "cardano",
			Name:    "Cardano",
			Symbol:  "ADA",
			Balance: Q(1250.75),
			Value:   M(1125.68, DefaultCurrency),
			Address: "addr1qx54l9frjhncsjy2qpme4rqj7kj24j8y5jf3rnrliuvxefuej7tl2jzuzkfjr69xn04d3j5vs6pzq6n5gpr3jmvl5hmsz3wcdt",
			Color:   "#0033AD",
			Change:  0.32,
		},
	)
	if err != nil {
		panic(err) // the sample is static, it cannot be invalid.
	}
	return hs
}
