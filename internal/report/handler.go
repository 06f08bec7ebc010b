package report

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/fitlog/internal/profile"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
)

type entriesSource interface {
	Entries(ctx context.Context) map[workouts.Category][]workouts.Entry
}

type profileSource interface {
	Get() (profile.UserProfile, bool)
}

type Handler struct {
	ledger    entriesSource
	profiles  profileSource
	generator *Generator
}

func NewHandler(ledger entriesSource, profiles profileSource, generator *Generator) *Handler {
	return &Handler{
		ledger:    ledger,
		profiles:  profiles,
		generator: generator,
	}
}

func (handler *Handler) HandlePDF(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.report.pdf")
	defer span.End()

	p, ok := handler.profiles.Get()
	if !ok {
		http.Error(w, "Please save user info first!", http.StatusBadRequest)
		return
	}

	doc, err := handler.generator.Generate(ctx, p, handler.ledger.Entries(ctx))
	if err != nil {
		log.Errorf("generate report for [%s]: %s", p.Name, err)
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", FileName(p.Name)))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.PDF, doc)
}
