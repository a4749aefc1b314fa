package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of wlt.
//
// Wallet identifiers are predicted from the holdings of the configuration,
// so SetFlags must have been called. Holdings are only loaded when the shell
// asks for them.
func Completion() *complete.Command {
	ids := complete.PredictFunc(predictIDs)
	formatFlags := func(more ...string) map[string]complete.Predictor {
		flags := map[string]complete.Predictor{
			"html": predict.Nothing,
			"json": predict.Nothing,
		}
		for _, f := range more {
			flags[f] = predict.Nothing
		}
		return flags
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"list":   {Flags: formatFlags()},
			"show":   {Flags: formatFlags("qr"), Args: ids},
			"copy":   {Args: ids},
			"browse": {},
			"topic":  {Args: topics()},
		},
		Flags: map[string]complete.Predictor{
			"holdings-file": predict.Files("*.json"),
			"holdings-path": predict.Something,
			"currency":      predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"style":         predict.Set{"auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"},
			"log-file":      predict.Files("*"),
			"log-level":     predict.Set{"debug", "info", "warn", "error"},
		},
	}
}

// predictIDs predicts the wallet identifiers.
func predictIDs(string) []string {
	holdings, err := loadHoldings()
	if err != nil {
		return nil
	}
	return holdings.IDs()
}
