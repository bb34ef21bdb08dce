package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/strength"
)

const (
	// MinPasswordLength is the shortest password that passes the length check.
	MinPasswordLength = 12
	// WeakEntropyBits is the entropy below which a failing password is Weak.
	WeakEntropyBits = 36
)

// Suggestion messages, in check order.
const (
	SuggestUppercase = "Add uppercase letters."
	SuggestLowercase = "Add lowercase letters."
	SuggestDigits    = "Add numbers."
	SuggestSymbols   = "Add special symbols."
	SuggestUncommon  = "Avoid common passwords."
)

// BreachChecker looks a password up in a breach corpus. Implementations must
// not fail: anything that prevents a lookup is reported as model.NotChecked.
type BreachChecker interface {
	Check(ctx context.Context, password string) model.BreachResult
}

// Evaluator grades passwords. It keeps no per-call state and is safe for
// concurrent use.
type Evaluator struct {
	blocklist *strength.Blocklist
	breach    BreachChecker
}

// NewEvaluator creates an Evaluator. A nil checker skips the breach lookup
// and reports it as not checked.
func NewEvaluator(blocklist *strength.Blocklist, checker BreachChecker) *Evaluator {
	return &Evaluator{blocklist: blocklist, breach: checker}
}

// Evaluate runs the rule checks in order (length, uppercase, lowercase,
// digit, symbol, common password, breach), estimates entropy and derives the
// strength label.
//
// A password the breach lookup could not check is treated as not breached,
// so it can still be labelled Strong while the corpus is unreachable. The
// verdict's Breach field records that case.
func (e *Evaluator) Evaluate(ctx context.Context, password string) model.Verdict {
	suggestions := []string{}

	if n := utf8.RuneCountInString(password); n < MinPasswordLength {
		suggestions = append(suggestions, fmt.Sprintf("Use at least %d characters (yours is %d).", MinPasswordLength, n))
	}

	classes := strength.ScanClasses(password)
	if !classes.Upper {
		suggestions = append(suggestions, SuggestUppercase)
	}
	if !classes.Lower {
		suggestions = append(suggestions, SuggestLowercase)
	}
	if !classes.Digit {
		suggestions = append(suggestions, SuggestDigits)
	}
	if !classes.Symbol {
		suggestions = append(suggestions, SuggestSymbols)
	}

	if e.blocklist.Contains(password) {
		suggestions = append(suggestions, SuggestUncommon)
	}

	breach := model.NotChecked()
	if e.breach != nil {
		breach = e.breach.Check(ctx, password)
	}
	if breach.IsFound() {
		suggestions = append(suggestions, fmt.Sprintf("Found in %d breaches - pick something else.", breach.Count))
	}

	entropy := strength.Estimate(password)

	return model.Verdict{
		Strength:     label(suggestions, breach, entropy),
		Suggestions:  suggestions,
		EntropyBits:  entropy,
		Breach:       breach,
		PatternScore: strength.PatternScore(password),
	}
}

func label(suggestions []string, breach model.BreachResult, entropy float64) model.Strength {
	if len(suggestions) == 0 {
		return model.StrengthStrong
	}
	if breach.IsFound() || entropy < WeakEntropyBits {
		return model.StrengthWeak
	}
	return model.StrengthModerate
}
