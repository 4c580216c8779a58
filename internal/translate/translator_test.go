package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarmaulana/sifak-go/internal/locale"
)

// stubProvider is a scripted Provider for failover tests.
type stubProvider struct {
	name  string
	text  string        // returned text ("" = empty response)
	err   error         // returned error, if any
	echo  bool          // echo the input back unchanged
	delay time.Duration // simulated latency
	calls atomic.Int64
	seen  atomic.Value // last input text
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Translate(ctx context.Context, text string, _ locale.Lang) (string, error) {
	s.calls.Add(1)
	s.seen.Store(text)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if s.err != nil {
		return "", s.err
	}
	if s.echo {
		return text, nil
	}
	return s.text, nil
}

func newTestTranslator(t *testing.T, timeout time.Duration, providers ...Provider) *Translator {
	t.Helper()
	return New("", nil, WithProviders(providers...), WithTimeout(timeout))
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func TestTranslateValidation(t *testing.T) {
	tr := newTestTranslator(t, time.Second, &stubProvider{name: "a", text: "x"})

	_, err := tr.Translate(context.Background(), "", locale.LangEN)
	assert.ErrorIs(t, err, ErrMissingText)

	_, err = tr.Translate(context.Background(), "halo", "")
	assert.ErrorIs(t, err, ErrMissingTarget)
}

func TestTranslateDictionaryShortCircuit(t *testing.T) {
	primary := &stubProvider{name: "a", text: "never used"}
	tr := newTestTranslator(t, time.Second, primary)

	res, err := tr.Translate(context.Background(), "Pendidikan", locale.LangEN)
	require.NoError(t, err)
	assert.Equal(t, "Education", res.Text)
	assert.Equal(t, ProviderDictionary, res.Service)
	assert.EqualValues(t, 0, primary.calls.Load(), "dictionary hit must not call providers")

	res, err = tr.Translate(context.Background(), "Hukum", locale.LangAR)
	require.NoError(t, err)
	assert.Equal(t, "قانون", res.Text)
}

func TestTranslatePrimarySuccess(t *testing.T) {
	primary := &stubProvider{name: ProviderMyMemory, text: "Holiday Announcement"}
	secondary := &stubProvider{name: ProviderLibre, text: "unused"}
	tr := newTestTranslator(t, time.Second, primary, secondary)

	res, err := tr.Translate(context.Background(), "Pengumuman Libur", locale.LangEN)
	require.NoError(t, err)
	assert.Equal(t, "Holiday Announcement", res.Text)
	assert.Equal(t, ProviderMyMemory, res.Service)
	assert.EqualValues(t, 0, secondary.calls.Load(), "secondary must not be called when primary succeeds")
}

func TestTranslateFailoverOnTimeout(t *testing.T) {
	// Primary hangs past its timeout, secondary answers quickly. Total
	// elapsed must be about one timeout window, not unbounded.
	const timeout = 50 * time.Millisecond
	primary := &stubProvider{name: ProviderMyMemory, text: "late", delay: time.Second}
	secondary := &stubProvider{name: ProviderLibre, text: "إعلان العطلة"}
	tr := newTestTranslator(t, timeout, primary, secondary)

	start := time.Now()
	res, err := tr.Translate(context.Background(), "Pengumuman Libur", locale.LangAR)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, "إعلان العطلة", res.Text)
	assert.Equal(t, ProviderLibre, res.Service)
	assert.Less(t, elapsed, 10*timeout, "failover must be bounded by the primary timeout")
}

func TestTranslateRejectsUnchangedText(t *testing.T) {
	primary := &stubProvider{name: ProviderMyMemory, echo: true}
	secondary := &stubProvider{name: ProviderLibre, text: "Important News"}
	tr := newTestTranslator(t, time.Second, primary, secondary)

	res, err := tr.Translate(context.Background(), "Berita Penting", locale.LangEN)
	require.NoError(t, err)
	assert.Equal(t, ProviderLibre, res.Service)
	assert.Equal(t, "Important News", res.Text)
}

func TestTranslateRejectsEmptyText(t *testing.T) {
	primary := &stubProvider{name: ProviderMyMemory, text: ""}
	secondary := &stubProvider{name: ProviderLibre, text: "ok"}
	tr := newTestTranslator(t, time.Second, primary, secondary)

	res, err := tr.Translate(context.Background(), "halo dunia", locale.LangEN)
	require.NoError(t, err)
	assert.Equal(t, ProviderLibre, res.Service)
	assert.Equal(t, "ok", res.Text)
}

func TestTranslateAllProvidersExhausted(t *testing.T) {
	primary := &stubProvider{name: ProviderMyMemory, err: errors.New("boom")}
	secondary := &stubProvider{name: ProviderLibre, echo: true}
	tr := newTestTranslator(t, time.Second, primary, secondary)

	_, err := tr.Translate(context.Background(), "halo dunia", locale.LangEN)
	assert.ErrorIs(t, err, ErrAllProvidersFailed)
	assert.EqualValues(t, 1, primary.calls.Load())
	assert.EqualValues(t, 1, secondary.calls.Load())
}

// memCache is a minimal in-process ResultCache for tests.
type memCache struct {
	data map[string][]byte
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, errors.New("cache miss")
}

func (m *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.data[key] = value
	return nil
}

func TestTranslateCachesSuccessfulResults(t *testing.T) {
	primary := &stubProvider{name: ProviderMyMemory, text: "Important News"}
	c := &memCache{data: make(map[string][]byte)}
	tr := New("", nil, WithProviders(primary), WithCache(c))

	res, err := tr.Translate(context.Background(), "Berita Penting", locale.LangEN)
	require.NoError(t, err)
	assert.Equal(t, "Important News", res.Text)
	assert.EqualValues(t, 1, primary.calls.Load())

	// Repeat call is served from the cache, provider stays untouched.
	res, err = tr.Translate(context.Background(), "Berita Penting", locale.LangEN)
	require.NoError(t, err)
	assert.Equal(t, "Important News", res.Text)
	assert.Equal(t, ProviderMyMemory, res.Service)
	assert.EqualValues(t, 1, primary.calls.Load())

	// Different target language is a distinct cache key.
	_, err = tr.Translate(context.Background(), "Berita Penting", locale.LangAR)
	require.NoError(t, err)
	assert.EqualValues(t, 2, primary.calls.Load())
}

func TestTranslateDoesNotCacheFailures(t *testing.T) {
	primary := &stubProvider{name: ProviderMyMemory, err: errors.New("boom")}
	c := &memCache{data: make(map[string][]byte)}
	tr := New("", nil, WithProviders(primary), WithCache(c))

	_, err := tr.Translate(context.Background(), "halo dunia", locale.LangEN)
	assert.ErrorIs(t, err, ErrAllProvidersFailed)
	assert.Empty(t, c.data)
}

func TestTranslateTruncatesLongInput(t *testing.T) {
	primary := &stubProvider{name: ProviderMyMemory, text: "translated"}
	tr := newTestTranslator(t, time.Second, primary)

	long := make([]rune, 0, MaxTextLen*2)
	for i := 0; i < MaxTextLen*2; i++ {
		long = append(long, 'a')
	}
	_, err := tr.Translate(context.Background(), string(long), locale.LangEN)
	require.NoError(t, err)

	seen, _ := primary.seen.Load().(string)
	assert.Len(t, []rune(seen), MaxTextLen, "input must be truncated before dispatch")
}

func TestMyMemoryClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Pengumuman Libur", r.URL.Query().Get("q"))
		assert.Equal(t, "id|en", r.URL.Query().Get("langpair"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responseStatus":200,"responseData":{"translatedText":"Holiday Announcement"}}`))
	}))
	defer srv.Close()

	c := &myMemoryClient{baseURL: srv.URL, client: srv.Client()}
	got, err := c.Translate(context.Background(), "Pengumuman Libur", locale.LangEN)
	require.NoError(t, err)
	assert.Equal(t, "Holiday Announcement", got)
}

func TestMyMemoryClientNonOKResponseStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"responseStatus":429,"responseData":{"translatedText":""}}`))
	}))
	defer srv.Close()

	c := &myMemoryClient{baseURL: srv.URL, client: srv.Client()}
	_, err := c.Translate(context.Background(), "halo", locale.LangEN)
	assert.Error(t, err)
}

func TestLibreClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, decodeJSON(r, &body))
		assert.Equal(t, "id", body["source"])
		assert.Equal(t, "ar", body["target"])
		assert.Equal(t, "text", body["format"])
		_, _ = w.Write([]byte(`{"translatedText":"إعلان العطلة"}`))
	}))
	defer srv.Close()

	c := &libreClient{baseURL: srv.URL, client: srv.Client()}
	got, err := c.Translate(context.Background(), "Pengumuman Libur", locale.LangAR)
	require.NoError(t, err)
	assert.Equal(t, "إعلان العطلة", got)
}

func TestLibreClientHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "over quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := &libreClient{baseURL: srv.URL, client: srv.Client()}
	_, err := c.Translate(context.Background(), "halo", locale.LangEN)
	assert.Error(t, err)
}
