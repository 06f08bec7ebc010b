package charts

import (
	"context"
	"net/http"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
)

type totalsSource interface {
	Totals(ctx context.Context) workouts.Totals
	Version() uint64
}

type Handler struct {
	ledger   totalsSource
	renderer *Renderer
}

func NewHandler(ledger totalsSource, renderer *Renderer) *Handler {
	return &Handler{
		ledger:   ledger,
		renderer: renderer,
	}
}

func (handler *Handler) HandleBar(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, KindBar)
}

func (handler *Handler) HandlePie(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, KindPie)
}

func (handler *Handler) serve(w http.ResponseWriter, r *http.Request, kind Kind) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.charts."+string(kind))
	defer span.End()

	// version first: totals read afterwards are never older than the key
	version := handler.ledger.Version()
	totals := handler.ledger.Totals(ctx)

	png, err := handler.renderer.Render(ctx, kind, totals, version)
	if err != nil {
		log.Errorf("render %s chart: %s", kind, err)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	pkg.WriteResponseBytesOK(w, pkg.ContentType.PNG, png)
}
