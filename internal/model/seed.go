package model

import "github.com/shopspring/decimal"

// Seed data mirrors a fresh Zerah session. Everything here is volatile;
// a new run always starts from these values.

func SeedWallets() []Wallet {
	return []Wallet{
		{
			Currency: "USD",
			Label:    "US Dollar",
			Balance:  decimal.NewFromFloat(12450.00),
			Symbol:   "$",
			Icon:     "us",
			BankAccount: &BankAccount{
				Institution: "Zerah Global Trust",
				AccountName: "Alex Thompson",
				Details: []BankDetail{
					{Label: "Routing Number", Value: "021000021", Copyable: true},
					{Label: "Account Number", Value: "7482910394", Copyable: true},
					{Label: "Swift Code", Value: "ZERAHUS33", Copyable: true},
				},
			},
		},
		{
			Currency: "EUR",
			Label:    "Euro",
			Balance:  decimal.NewFromFloat(8230.50),
			Symbol:   "€",
			Icon:     "eu",
			BankAccount: &BankAccount{
				Institution: "Zerah Europe SE",
				AccountName: "Alex Thompson",
				Details: []BankDetail{
					{Label: "IBAN", Value: "DE89 3704 0044 0532 0130 00", Copyable: true},
					{Label: "BIC", Value: "ZERADEFF", Copyable: true},
				},
			},
		},
		{
			Currency: "GBP",
			Label:    "British Pound",
			Balance:  decimal.NewFromFloat(4120.00),
			Symbol:   "£",
			Icon:     "gb",
			BankAccount: &BankAccount{
				Institution: "Zerah UK Ltd",
				AccountName: "Alex Thompson",
				Details: []BankDetail{
					{Label: "Sort Code", Value: "40-05-15", Copyable: true},
					{Label: "Account Number", Value: "83920184", Copyable: true},
				},
			},
		},
	}
}

// AvailableCurrencies lists the currencies a new wallet can be opened in,
// beyond the seeded ones.
func AvailableCurrencies() []CurrencyOption {
	return []CurrencyOption{
		{
			Code: "NGN", Label: "Nigerian Naira", Symbol: "₦", Icon: "ng",
			BankAccount: &BankAccount{
				Institution: "Wema Bank (Zerah)",
				AccountName: "Alex Thompson (ZRH)",
				Details: []BankDetail{
					{Label: "Account Number", Value: "0123456789", Copyable: true},
					{Label: "Account Type", Value: "Virtual Savings"},
				},
			},
		},
		{
			Code: "JPY", Label: "Japanese Yen", Symbol: "¥", Icon: "jp",
			BankAccount: &BankAccount{
				Institution: "Zerah Japan GK",
				AccountName: "アレックス トンプソン",
				Details: []BankDetail{
					{Label: "Bank Code", Value: "0001", Copyable: true},
					{Label: "Branch Code", Value: "123", Copyable: true},
					{Label: "Account Number", Value: "7654321", Copyable: true},
				},
			},
		},
		{
			Code: "AUD", Label: "Australian Dollar", Symbol: "$", Icon: "au",
			BankAccount: &BankAccount{
				Institution: "Zerah Australia Pty Ltd",
				AccountName: "Alex Thompson",
				Details: []BankDetail{
					{Label: "BSB Number", Value: "062-000", Copyable: true},
					{Label: "Account Number", Value: "1234 5678", Copyable: true},
					{Label: "SWIFT Code", Value: "ZERAAU2S", Copyable: true},
				},
			},
		},
		{
			Code: "CNY", Label: "Chinese Yuan", Symbol: "¥", Icon: "cn",
			BankAccount: &BankAccount{
				Institution: "Zerah China Ltd",
				AccountName: "艾利克斯 汤普森",
				Details: []BankDetail{
					{Label: "CNAPS Code", Value: "102100000030", Copyable: true},
					{Label: "Account Number", Value: "6222 0210 0100 1234 567", Copyable: true},
				},
			},
		},
	}
}

// ConvertCurrencies is the pair universe offered by the Convert flow:
// every held or openable currency.
func ConvertCurrencies() []CurrencyOption {
	return []CurrencyOption{
		{Code: "USD", Label: "US Dollar", Symbol: "$", Icon: "us"},
		{Code: "EUR", Label: "Euro", Symbol: "€", Icon: "eu"},
		{Code: "GBP", Label: "British Pound", Symbol: "£", Icon: "gb"},
		{Code: "NGN", Label: "Nigerian Naira", Symbol: "₦", Icon: "ng"},
		{Code: "AUD", Label: "Australian Dollar", Symbol: "$", Icon: "au"},
		{Code: "CNY", Label: "Chinese Yuan", Symbol: "¥", Icon: "cn"},
	}
}

func SeedActivity() []Transaction {
	return []Transaction{
		{
			ID: "1", Name: "Apple Store", Date: "Oct 24, 2:45 PM",
			Amount: decimal.NewFromFloat(-1299.00), Currency: "USD",
			Type: TypeExpense, Icon: "shopping_bag",
		},
		{
			ID: "2", Name: "Le Bistro Paris", Date: "Oct 23, 8:12 PM",
			Amount: decimal.NewFromFloat(-45.50), Currency: "EUR",
			Type: TypeExpense, Icon: "restaurant",
		},
		{
			ID: "3", Name: "Salary Deposit", Date: "Oct 22, 9:00 AM",
			Amount: decimal.NewFromFloat(4500.00), Currency: "USD",
			Type: TypeIncome, Icon: "arrow_downward",
		},
		{
			ID: "4", Name: "Transport for London", Date: "Oct 21, 5:30 PM",
			Amount: decimal.NewFromFloat(-8.20), Currency: "GBP",
			Type: TypeExpense, Icon: "train",
		},
	}
}

func SeedCards(holder string) []Card {
	return []Card{
		{
			ID:       "1",
			LastFour: "7482",
			PAN:      "4532 7482 9103 7482",
			CVV:      "123",
			Expiry:   "12 / 28",
			Holder:   holder,
			Currency: "USD",
			Frozen:   false,
			Tier:     TierPlatinum,
		},
	}
}

func SeedNotifications() []Notification {
	return []Notification{
		{
			ID: "1", Category: CategoryTransaction,
			Title: "Payment Received",
			Body:  "You received a salary deposit of $4,500.00 into your USD wallet.",
			Time:  "2h ago", Read: false, Icon: "arrow_downward",
		},
		{
			ID: "2", Category: CategorySecurity,
			Title: "New Sign-in Detected",
			Body:  "A new sign-in to your account was detected from London, UK.",
			Time:  "5h ago", Read: false, Icon: "security",
		},
		{
			ID: "3", Category: CategoryEngine,
			Title: "Engine Pro Activated",
			Body:  "Welcome to Zerah Engine Pro! Your high-performance business tools are now ready for use.",
			Time:  "1d ago", Read: true, Icon: "bolt",
		},
		{
			ID: "4", Category: CategoryTransaction,
			Title: "Card Payment",
			Body:  "Your Platinum card was charged $1,299.00 at Apple Store.",
			Time:  "2d ago", Read: true, Icon: "credit_card",
		},
		{
			ID: "5", Category: CategorySystem,
			Title: "Scheduled Maintenance",
			Body:  "Zerah will undergo scheduled maintenance on Sunday 02:00 UTC. No action needed.",
			Time:  "3d ago", Read: true, Icon: "build",
		},
	}
}
