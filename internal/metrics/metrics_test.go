package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	okBefore := testutil.ToFloat64(LedgerOperations.WithLabelValues("invest", "ok"))
	errBefore := testutil.ToFloat64(LedgerOperations.WithLabelValues("invest", "error"))

	Observe("invest", time.Now(), nil)
	Observe("invest", time.Now(), errors.New("boom"))
	Observe("invest", time.Now(), nil)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(LedgerOperations.WithLabelValues("invest", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(LedgerOperations.WithLabelValues("invest", "error")))
}
