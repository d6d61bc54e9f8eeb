package categorizer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/normalizer"
	"github.com/sugarme/tokenizer/pretokenizer"
	"golang.org/x/text/unicode/norm"
)

// Normalizer maps free text to its canonical lemma string.
type Normalizer interface {
	Normalize(text string) string
}

// NormalizeText performs Unicode normalization and trims whitespace.
func NormalizeText(text string) string {
	normed := norm.NFKC.String(text)
	normed = strings.TrimSpace(normed)
	// Collapse internal control characters except newlines.
	normed = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
	return normed
}

// NormalizeAll normalizes every text with n, preserving order.
func NormalizeAll(n Normalizer, texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = n.Normalize(t)
	}
	return out
}

// Lemmatizer tokenizes text and reduces every token to its English dictionary form.
// It is safe for concurrent use.
type Lemmatizer struct {
	pre    *pretokenizer.BertPreTokenizer
	golem  *golem.Lemmatizer
	lemmas *lru.Cache[string, string]
}

// NewLemmatizer loads the English lemma dictionary. cacheSize bounds the
// number of memoized token lemmas.
func NewLemmatizer(cacheSize int) (*Lemmatizer, error) {
	if cacheSize <= 0 {
		cacheSize = 4096
	}
	gl, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lemma dictionary: %w", err)
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create lemma cache: %w", err)
	}
	return &Lemmatizer{
		pre:    pretokenizer.NewBertPreTokenizer(),
		golem:  gl,
		lemmas: cache,
	}, nil
}

// Normalize splits text into word tokens, lemmatizes each one and joins the
// lemmas with single spaces in token order.
func (l *Lemmatizer) Normalize(text string) string {
	tokens := l.Tokenize(text)
	if len(tokens) == 0 {
		return ""
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = l.Lemma(tok)
	}
	return strings.Join(out, " ")
}

// Tokenize splits on whitespace and punctuation; punctuation marks become
// tokens of their own.
func (l *Lemmatizer) Tokenize(text string) []string {
	text = NormalizeText(text)
	if text == "" {
		return nil
	}
	pre, err := l.pre.PreTokenize(tokenizer.NewPreTokenizedString(text))
	if err != nil {
		// The BERT splitter only fails on invalid offsets; whitespace is still a usable split.
		return strings.Fields(text)
	}
	splits := pre.GetSplits(normalizer.OriginalTarget, tokenizer.Byte)
	tokens := make([]string, 0, len(splits))
	for _, s := range splits {
		if v := strings.TrimSpace(s.Value); v != "" {
			tokens = append(tokens, v)
		}
	}
	return tokens
}

// Lemma returns the lowercase dictionary form of a single token.
func (l *Lemmatizer) Lemma(token string) string {
	key := strings.ToLower(token)
	if v, ok := l.lemmas.Get(key); ok {
		return v
	}
	lemma := l.golem.Lemma(key)
	if lemma == "" {
		lemma = key
	}
	l.lemmas.Add(key, lemma)
	return lemma
}
