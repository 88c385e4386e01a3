package ratefeed_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"

	"github.com/arcanum-chain/arcanum/x/oracle/ratefeed"
)

type recordingSubmitter struct {
	rates []uint64
	err   error
}

func (s *recordingSubmitter) SubmitRate(_ context.Context, rate uint64) error {
	if s.err != nil {
		return s.err
	}
	s.rates = append(s.rates, rate)
	return nil
}

func rateServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestParseCNY(t *testing.T) {
	rate, err := ratefeed.ParseCNY([]byte(`{"base":"USD","rates":{"CNY":7.2345,"EUR":0.93}}`))
	require.NoError(t, err)
	require.Equal(t, uint64(7_234_500), rate)

	// quoted values and short fractions are padded
	rate, err = ratefeed.ParseCNY([]byte(`{"CNY": "7.2"}`))
	require.NoError(t, err)
	require.Equal(t, uint64(7_200_000), rate)

	// long fractions are truncated, not rounded
	rate, err = ratefeed.ParseCNY([]byte(`{"CNY":7.23456789}`))
	require.NoError(t, err)
	require.Equal(t, uint64(7_234_567), rate)

	_, err = ratefeed.ParseCNY([]byte(`{"rates":{"EUR":0.93}}`))
	require.Error(t, err)

	_, err = ratefeed.ParseCNY([]byte(`{"CNY":}`))
	require.Error(t, err)
}

func TestParseCNYRejectsOverflow(t *testing.T) {
	// 25 integer digits cannot fit in uint64 once scaled to 6dp
	_, err := ratefeed.ParseCNY([]byte(`{"CNY":9999999999999999999999999}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not fit")

	// a 19-digit scaled value is still in range
	rate, err := ratefeed.ParseCNY([]byte(`{"CNY":9999999999999.999999}`))
	require.NoError(t, err)
	require.Equal(t, uint64(9_999_999_999_999_999_999), rate)
}

func TestMedian(t *testing.T) {
	require.Equal(t, uint64(7_230_000), ratefeed.Median([]uint64{7_240_000, 7_210_000, 7_230_000}))

	// even count: mean of the two middles
	require.Equal(t, uint64(7_225_000), ratefeed.Median([]uint64{7_210_000, 7_220_000, 7_230_000, 7_240_000}))

	require.Equal(t, uint64(7_000_000), ratefeed.Median([]uint64{7_000_000}))
}

func TestWorkerSubmitsMedian(t *testing.T) {
	s1 := rateServer(t, `{"rates":{"CNY":7.21}}`)
	s2 := rateServer(t, `{"rates":{"CNY":7.24}}`)
	s3 := rateServer(t, `{"rates":{"CNY":7.23}}`)

	submitter := &recordingSubmitter{}
	worker := ratefeed.NewWorker(ratefeed.Config{
		Endpoints:            []string{s1.URL, s2.URL, s3.URL},
		UpdateIntervalBlocks: 100,
	}, submitter, log.NewNopLogger())

	worker.OnBlock(context.Background(), 1)
	require.Equal(t, []uint64{7_230_000}, submitter.rates)

	// stride gate holds until a full interval has passed
	worker.OnBlock(context.Background(), 50)
	require.Len(t, submitter.rates, 1)

	worker.OnBlock(context.Background(), 101)
	require.Equal(t, []uint64{7_230_000, 7_230_000}, submitter.rates)
}

func TestWorkerAbortsOnSourceSpread(t *testing.T) {
	s1 := rateServer(t, `{"rates":{"CNY":7.00}}`)
	s2 := rateServer(t, `{"rates":{"CNY":7.60}}`)

	submitter := &recordingSubmitter{}
	worker := ratefeed.NewWorker(ratefeed.Config{
		Endpoints: []string{s1.URL, s2.URL},
	}, submitter, log.NewNopLogger())

	// 857 bps spread exceeds the 500 bps limit
	worker.OnBlock(context.Background(), 1)
	require.Empty(t, submitter.rates)
}

func TestWorkerToleratesFailedSources(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)
	healthy := rateServer(t, `{"rates":{"CNY":7.23}}`)

	submitter := &recordingSubmitter{}
	worker := ratefeed.NewWorker(ratefeed.Config{
		Endpoints: []string{broken.URL, healthy.URL},
	}, submitter, log.NewNopLogger())

	worker.OnBlock(context.Background(), 1)
	require.Equal(t, []uint64{7_230_000}, submitter.rates)
}

func TestWorkerRequiresMinimumSources(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)

	submitter := &recordingSubmitter{}
	worker := ratefeed.NewWorker(ratefeed.Config{
		Endpoints: []string{broken.URL},
	}, submitter, log.NewNopLogger())

	worker.OnBlock(context.Background(), 1)
	require.Empty(t, submitter.rates)
}
