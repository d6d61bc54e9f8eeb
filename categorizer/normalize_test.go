package categorizer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sharedLemmatizer     *Lemmatizer
	sharedLemmatizerErr  error
	sharedLemmatizerOnce sync.Once
)

func newTestLemmatizer(t *testing.T) *Lemmatizer {
	t.Helper()
	sharedLemmatizerOnce.Do(func() {
		sharedLemmatizer, sharedLemmatizerErr = NewLemmatizer(128)
	})
	require.NoError(t, sharedLemmatizerErr)
	return sharedLemmatizer
}

func TestNormalizeTextNFKC(t *testing.T) {
	assert.Equal(t, "free market", NormalizeText("  ｆｒｅｅ market\x00 "))
}

func TestLemmatizerEmpty(t *testing.T) {
	l := newTestLemmatizer(t)
	assert.Equal(t, "", l.Normalize(""))
	assert.Equal(t, "", l.Normalize("   \n\t"))
}

func TestLemmatizerIdempotentOnLemma(t *testing.T) {
	l := newTestLemmatizer(t)
	assert.Equal(t, "state", l.Normalize("state"))
	once := l.Normalize("states")
	assert.Equal(t, "state", once)
	assert.Equal(t, once, l.Normalize(once))
}

func TestLemmatizerKeepsTokenOrder(t *testing.T) {
	l := newTestLemmatizer(t)
	assert.Equal(t, "welfare state market", l.Normalize("welfare states markets"))
	assert.Equal(t, "market state welfare", l.Normalize("Markets States welfare"))
}

func TestLemmatizerNoDeduplication(t *testing.T) {
	l := newTestLemmatizer(t)
	assert.Equal(t, "state state", l.Normalize("state states"))
}

func TestTokenizeSplitsPunctuation(t *testing.T) {
	l := newTestLemmatizer(t)
	assert.Equal(t, []string{"free", "market", ",", "now", "!"}, l.Tokenize("free market, now!"))
}

func TestTokenizeSplitsContractions(t *testing.T) {
	l := newTestLemmatizer(t)
	assert.Equal(t, []string{"don", "'", "t"}, l.Tokenize("don't"))

	terms := NewTfidfVectorizer().Terms(l.Normalize("don't tax the U.K."))
	assert.NotContains(t, terms, "t")
	assert.NotContains(t, terms, "'")
	assert.NotContains(t, terms, "k")
	assert.Contains(t, terms, "tax")
}

func TestNormalizeAll(t *testing.T) {
	out := NormalizeAll(lowerNormalizer{}, []string{"A  B", "C"})
	assert.Equal(t, []string{"a b", "c"}, out)
}
