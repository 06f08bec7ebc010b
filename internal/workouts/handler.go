package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsLedger interface {
	Add(ctx context.Context, params AddParams) (*Entry, error)
	Delete(ctx context.Context, category Category, id int) bool
	Entries(ctx context.Context) map[Category][]Entry
	Totals(ctx context.Context) Totals
	Day(ctx context.Context, day time.Time) map[Category][]Entry
	DayTotals(ctx context.Context, day time.Time) Totals
	CaloriesBetween(ctx context.Context, from, to time.Time) float64
	Count() int
}

type bodyProfile interface {
	WeightKg() *float64
	WeeklyCalorieGoal() float64
}

type AddWorkoutResponse struct {
	Entry   Entry  `json:"entry"`
	Message string `json:"message"`
}

type DeleteWorkoutResponse struct {
	Deleted bool `json:"deleted"`
}

type MotivationInfo struct {
	Level   Motivation `json:"level"`
	Message string     `json:"message"`
}

type WeeklyGoal struct {
	GoalKcal        float64 `json:"goal_kcal"`
	BurnedKcal      float64 `json:"burned_kcal"`
	ProgressPercent float64 `json:"progress_percent"`
}

type SummaryResponse struct {
	Totals     Totals         `json:"totals"`
	Motivation MotivationInfo `json:"motivation"`
	WeeklyGoal WeeklyGoal     `json:"weekly_goal"`
}

type DailyResponse struct {
	Date    string               `json:"date"`
	Entries map[Category][]Entry `json:"entries"`
	Totals  Totals               `json:"totals"`
}

type Handler struct {
	ledger         workoutsLedger
	profile        bodyProfile
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(ledger workoutsLedger, profile bodyProfile, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		ledger:         ledger,
		profile:        profile,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	values, err := pkg.RequestValues(r)
	if err != nil {
		log.Tracef("add workout, read request values: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := handler.ledger.Add(ctx, AddParams{
		Category: values["category"],
		Exercise: values["exercise"],
		Duration: values["duration"],
		WeightKg: handler.profile.WeightKg(),
	})
	if err != nil {
		if errors.Is(err, ErrMissingField) || errors.Is(err, ErrInvalidDuration) || errors.Is(err, ErrUnknownCategory) {
			log.Debugf("workout entry rejected: %s", err)
			handler.metricsManager.CounterRejectedEntries.WithLabelValues(rejectReason(err)).Inc()
			http.Error(w, UserMessage(err), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add workout [%s]: %s", values["exercise"], err)
		http.Error(w, "error, failed to add workout", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutsAdded.WithLabelValues(string(entry.Category)).Inc()
	handler.metricsManager.GaugeLedgerEntries.Set(float64(handler.ledger.Count()))

	respJson, err := json.Marshal(AddWorkoutResponse{
		Entry:   *entry,
		Message: fmt.Sprintf("Added %s (%d min) to %s!", entry.Exercise, entry.Duration, entry.Category),
	})
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: %s", respJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	deleted := handler.ledger.Delete(ctx, Category(vars["category"]), id)
	if deleted {
		handler.metricsManager.CounterWorkoutsDeleted.Inc()
		handler.metricsManager.GaugeLedgerEntries.Set(float64(handler.ledger.Count()))
		log.Debugf("workout [%s] %d deleted", vars["category"], id)
	}

	handler.writeJSON(w, DeleteWorkoutResponse{Deleted: deleted})
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	handler.writeJSON(w, handler.ledger.Entries(ctx))
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats")
	defer span.End()

	handler.writeJSON(w, handler.ledger.Totals(ctx))
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.summary")
	defer span.End()

	totals := handler.ledger.Totals(ctx)
	level := ClassifyMotivation(totals.TotalMinutes)

	handler.writeJSON(w, SummaryResponse{
		Totals: totals,
		Motivation: MotivationInfo{
			Level:   level,
			Message: level.Message(),
		},
		WeeklyGoal: handler.weeklyGoal(ctx),
	})
}

// weeklyGoal compares calories of the last 7 days, today included, with the goal.
func (handler *Handler) weeklyGoal(ctx context.Context) WeeklyGoal {
	today := handler.now()
	burned := handler.ledger.CaloriesBetween(ctx, today.AddDate(0, 0, -6), today)
	goal := handler.profile.WeeklyCalorieGoal()

	progress := 0.0
	if goal > 0 {
		progress = burned / goal * 100
	}
	return WeeklyGoal{
		GoalKcal:        goal,
		BurnedKcal:      burned,
		ProgressPercent: progress,
	}
}

func (handler *Handler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.daily")
	defer span.End()

	dateStr := mux.Vars(r)["date"]
	day, err := time.ParseInLocation(DateLayout, dateStr, handler.now().Location())
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	handler.writeJSON(w, DailyResponse{
		Date:    day.Format(DateLayout),
		Entries: handler.ledger.Day(ctx, day),
		Totals:  handler.ledger.DayTotals(ctx, day),
	})
}

func (handler *Handler) HandleWorkoutPlan(w http.ResponseWriter, _ *http.Request) {
	handler.writeJSON(w, WorkoutPlan())
}

func (handler *Handler) HandleDietPlans(w http.ResponseWriter, _ *http.Request) {
	handler.writeJSON(w, DietPlans())
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
