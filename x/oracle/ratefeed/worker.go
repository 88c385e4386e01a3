// Package ratefeed implements the off-chain exchange-rate worker. It runs
// outside the deterministic path, fetches CNY/USDT quotes from public
// sources and feeds the median back on-chain through a RateSubmitter.
package ratefeed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"strings"
	"time"

	"cosmossdk.io/log"

	"github.com/arcanum-chain/arcanum/x/oracle/types"
)

// RateSubmitter carries an aggregated rate back to the chain, typically by
// broadcasting a MsgSubmitExchangeRate.
type RateSubmitter interface {
	SubmitRate(ctx context.Context, rate uint64) error
}

// DefaultEndpoints are queried in this exact order on every fetch.
var DefaultEndpoints = []string{
	"https://open.er-api.com/v6/latest/USD",
	"https://api.exchangerate-api.com/v4/latest/USD",
	"https://api.frankfurter.app/latest?from=USD&to=CNY",
}

const (
	fetchTimeout    = 8 * time.Second
	maxResponseSize = 1 << 20
)

// Config tunes the worker. Zero fields fall back to defaults that match the
// on-chain validation parameters.
type Config struct {
	Endpoints            []string
	UpdateIntervalBlocks int64
	MinSources           int
	MaxSpreadBps         uint64
}

func (c *Config) applyDefaults() {
	if len(c.Endpoints) == 0 {
		c.Endpoints = DefaultEndpoints
	}
	if c.UpdateIntervalBlocks <= 0 {
		c.UpdateIntervalBlocks = 100
	}
	if c.MinSources <= 0 {
		c.MinSources = 1
	}
	if c.MaxSpreadBps == 0 {
		c.MaxSpreadBps = 500
	}
}

// Worker polls rate sources once per interval and submits the median.
type Worker struct {
	cfg       Config
	client    *http.Client
	submitter RateSubmitter
	logger    log.Logger

	lastFetchHeight int64
}

// NewWorker creates a ratefeed worker
func NewWorker(cfg Config, submitter RateSubmitter, logger log.Logger) *Worker {
	cfg.applyDefaults()
	return &Worker{
		cfg:       cfg,
		client:    &http.Client{Timeout: fetchTimeout},
		submitter: submitter,
		logger:    logger.With("worker", "ratefeed"),
	}
}

// OnBlock is called once per observed block. The stride gate keeps the
// worker quiet between update windows; all failures are logged, never fatal.
func (w *Worker) OnBlock(ctx context.Context, height int64) {
	if w.lastFetchHeight != 0 && height-w.lastFetchHeight < w.cfg.UpdateIntervalBlocks {
		return
	}
	w.lastFetchHeight = height

	rate, err := w.aggregate(ctx)
	if err != nil {
		w.logger.Error("rate aggregation failed", "height", height, "error", err)
		return
	}

	if err := w.submitter.SubmitRate(ctx, rate); err != nil {
		w.logger.Error("rate submission failed", "height", height, "rate", rate, "error", err)
		return
	}
	w.logger.Info("exchange rate submitted", "height", height, "rate", rate)
}

// aggregate fetches every source in order and reduces to the median.
func (w *Worker) aggregate(ctx context.Context) (uint64, error) {
	var rates []uint64
	for _, endpoint := range w.cfg.Endpoints {
		rate, err := w.fetchOne(ctx, endpoint)
		if err != nil {
			w.logger.Error("source fetch failed", "endpoint", endpoint, "error", err)
			continue
		}
		rates = append(rates, rate)
	}

	if len(rates) < w.cfg.MinSources {
		return 0, fmt.Errorf("only %d of %d sources succeeded, need %d", len(rates), len(w.cfg.Endpoints), w.cfg.MinSources)
	}

	if err := checkSpread(rates, w.cfg.MaxSpreadBps); err != nil {
		return 0, err
	}

	median := Median(rates)
	if median < types.RateLowerBound || median > types.RateUpperBound {
		return 0, fmt.Errorf("median %d outside sanity band [%d, %d]", median, types.RateLowerBound, types.RateUpperBound)
	}
	return median, nil
}

func (w *Worker) fetchOne(ctx context.Context, endpoint string) (uint64, error) {
	reqCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, err
	}
	return ParseCNY(body)
}

/// ParseCNY extracts the first `"CNY":` value from a response body and scales
// it to 6dp fixed-point.
func ParseCNY(body []byte) (uint64, error) {
	marker := []byte(`"CNY":`)
	pos := bytes.Index(body, marker)
	if pos < 0 {
		return 0, fmt.Errorf("no CNY quote in response")
	}

	rest := body[pos+len(marker):]
	start := 0
	for start < len(rest) && (rest[start] == ' ' || rest[start] == '"') {
		start++
	}

	end := start
	for end < len(rest) && (rest[end] == '.' || (rest[end] >= '0' && rest[end] <= '9')) {
		end++
	}
	if end == start {
		return 0, fmt.Errorf("malformed CNY quote")
	}
	return scaleTo6dp(string(rest[start:end]))
}

// scaleTo6dp turns a decimal string like "7.2345" into 7_234_500, padding or
// truncating the fraction to exactly six digits.
func scaleTo6dp(value string) (uint64, error) {
	intPart := value
	fracPart := ""
	if dot := strings.IndexByte(value, '.'); dot >= 0 {
		intPart = value[:dot]
		fracPart = value[dot+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	if len(fracPart) > 6 {
		fracPart = fracPart[:6]
	}
	for len(fracPart) < 6 {
		fracPart += "0"
	}

	var scaled uint64
	for _, digits := range []string{intPart, fracPart} {
		for _, c := range digits {
			if c < '0' || c > '9' {
				return 0, fmt.Errorf("malformed decimal %q", value)
			}
			if scaled > (math.MaxUint64-9)/10 {
				return 0, fmt.Errorf("decimal %q does not fit in 6dp fixed-point", value)
			}
			scaled = scaled*10 + uint64(c-'0')
		}
	}
	return scaled, nil
}

// checkSpread aborts aggregation when any two sources disagree by more than
// the allowed basis points.
func checkSpread(rates []uint64, maxBps uint64) error {
	for i := 0; i < len(rates); i++ {
		for j := i + 1; j < len(rates); j++ {
			lo, hi := rates[i], rates[j]
			if lo > hi {
				lo, hi = hi, lo
			}
			if lo == 0 {
				return fmt.Errorf("source returned a zero rate")
			}
			spread := (hi - lo) * 10_000 / lo
			if spread > maxBps {
				return fmt.Errorf("sources disagree by %d bps, limit %d", spread, maxBps)
			}
		}
	}
	return nil
}

// Median reduces the successful rates. An even count averages the two
// middle values.
func Median(rates []uint64) uint64 {
	sorted := make([]uint64, len(rates))
	copy(sorted, rates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
