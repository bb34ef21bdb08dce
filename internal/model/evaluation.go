package model

// Strength is the label derived from an evaluation.
type Strength string

const (
	StrengthWeak     Strength = "Weak"
	StrengthModerate Strength = "Moderate"
	StrengthStrong   Strength = "Strong"
)

// BreachStatus tags the outcome of a breach lookup.
type BreachStatus string

const (
	// BreachNotChecked means the lookup could not be completed (network error,
	// timeout, non-200 status). It is not the same as Clean.
	BreachNotChecked BreachStatus = "not_checked"
	BreachClean      BreachStatus = "clean"
	BreachFound      BreachStatus = "found"
)

// BreachResult is the result of a k-anonymity breach lookup.
// Count is only set when Status is BreachFound.
type BreachResult struct {
	Status BreachStatus `json:"status"`
	Count  int64        `json:"count,omitempty"`
}

// NotChecked returns a BreachResult for a lookup that could not be completed.
func NotChecked() BreachResult { return BreachResult{Status: BreachNotChecked} }

// Clean returns a BreachResult for a password absent from the corpus.
func Clean() BreachResult { return BreachResult{Status: BreachClean} }

// Found returns a BreachResult for a password seen count times.
func Found(count int64) BreachResult { return BreachResult{Status: BreachFound, Count: count} }

// IsFound reports whether the password was confirmed breached.
func (r BreachResult) IsFound() bool { return r.Status == BreachFound }

// Verdict is the outcome of evaluating a single password.
type Verdict struct {
	Strength     Strength     `json:"strength"`
	Suggestions  []string     `json:"suggestions"`
	EntropyBits  float64      `json:"entropy_bits"`
	Breach       BreachResult `json:"breach"`
	PatternScore int          `json:"pattern_score"`
}

// EvaluateRequest represents a password evaluation request.
type EvaluateRequest struct {
	Password string `json:"password"`
}

// EvaluateResponse represents a password evaluation response.
// Alternatives is only present when the password is not Strong.
type EvaluateResponse struct {
	Verdict
	Alternatives *Alternatives `json:"alternatives,omitempty"`
}

// Alternatives holds replacement candidates offered for a weak password.
type Alternatives struct {
	Random     string `json:"random"`
	Passphrase string `json:"passphrase"`
}
