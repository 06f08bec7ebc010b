package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func TestLogRequest(t *testing.T) {
	buf := &bytes.Buffer{}
	origOut := log.StandardLogger().Out
	origLevel := log.GetLevel()
	log.SetOutput(buf)
	log.SetLevel(log.TraceLevel)
	defer func() {
		log.SetOutput(origOut)
		log.SetLevel(origLevel)
	}()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rr := httptest.NewRecorder()
	RequestID()(LogRequest()(next)).ServeHTTP(rr, httptest.NewRequest("GET", "/api/summary", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	out := buf.String()
	assert.Contains(t, out, "path=/api/summary")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "request_id="+rr.Header().Get(RequestIDHeader))
}
