package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestStarted(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/banks", "200"))

	done := RequestStarted("get")
	assert.Equal(t, float64(1), testutil.ToFloat64(httpInFlight))
	done("/api/banks", http.StatusOK)

	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/banks", "200")))
}

func TestRequestStarted_UnmatchedPath(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("POST", "unmatched", "404"))
	RequestStarted("POST")("", http.StatusNotFound)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("POST", "unmatched", "404")))
}

func TestRecordRelayerTransaction(t *testing.T) {
	before := testutil.ToFloat64(relayerTransactions.WithLabelValues("mint", "reverted"))
	RecordRelayerTransaction("mint", "reverted", 0)
	RecordRelayerTransaction("mint", "confirmed", 2*time.Second)
	assert.Equal(t, before+1, testutil.ToFloat64(relayerTransactions.WithLabelValues("mint", "reverted")))
}

func TestRecordTokenizationAndSweeper(t *testing.T) {
	before := testutil.ToFloat64(tokenizations.WithLabelValues("tokenized"))
	RecordTokenization("tokenized")
	assert.Equal(t, before+1, testutil.ToFloat64(tokenizations.WithLabelValues("tokenized")))

	swept := testutil.ToFloat64(reconciledAssets)
	RecordReconciledAsset()
	assert.Equal(t, swept+1, testutil.ToFloat64(reconciledAssets))
}

func TestHandler(t *testing.T) {
	RecordTokenization("failed")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "finara_tokenization_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
