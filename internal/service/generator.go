package service

import (
	"errors"
	"io"

	"github.com/vaultpass/passcheck/internal/crypto"
	"github.com/vaultpass/passcheck/internal/model"
)

const (
	// SuggestedPasswordLength and SuggestedPassphraseWords size the
	// replacements offered for passwords that are not Strong.
	SuggestedPasswordLength  = 16
	SuggestedPassphraseWords = 4
)

var ErrUnknownWordlist = errors.New("unknown wordlist")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	rng      io.Reader
	wordlist []string
}

// NewGeneratorService creates a new GeneratorService. rng is the randomness
// source (nil means crypto/rand) and wordlist backs Suggest (nil means the
// NATO list).
func NewGeneratorService(rng io.Reader, wordlist []string) *GeneratorService {
	if wordlist == nil {
		wordlist = crypto.NATOWordlist()
	}
	return &GeneratorService{rng: rng, wordlist: wordlist}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
		Rand:      s.rng,
	}

	if opts.Length == 0 {
		opts.Length = SuggestedPasswordLength
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// Passphrase produces a passphrase from the requested wordlist.
func (s *GeneratorService) Passphrase(req model.PassphraseRequest) (model.PassphraseResponse, error) {
	words, ok := crypto.Wordlist(req.Wordlist)
	if !ok {
		return model.PassphraseResponse{}, ErrUnknownWordlist
	}

	count := req.Words
	if count == 0 {
		count = SuggestedPassphraseWords
	}

	phrase, err := crypto.Passphrase(count, s.rng, words)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	name := req.Wordlist
	if name == "" {
		name = crypto.WordlistNATO
	}

	return model.PassphraseResponse{
		Passphrase: phrase,
		Words:      count,
		Wordlist:   name,
	}, nil
}

// Suggest returns a 16-character random password and a 4-word passphrase.
func (s *GeneratorService) Suggest() (model.Alternatives, error) {
	random, err := crypto.RandomPassword(SuggestedPasswordLength, s.rng)
	if err != nil {
		return model.Alternatives{}, err
	}
	phrase, err := crypto.Passphrase(SuggestedPassphraseWords, s.rng, s.wordlist)
	if err != nil {
		return model.Alternatives{}, err
	}
	return model.Alternatives{Random: random, Passphrase: phrase}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
