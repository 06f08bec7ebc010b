package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type SaveProfileResponse struct {
	Profile UserProfile `json:"profile"`
	Message string      `json:"message"`
}

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.save")
	defer span.End()

	values, err := pkg.RequestValues(r)
	if err != nil {
		log.Tracef("save profile, read request values: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ProfileInput{
		Name:              values["name"],
		RegnID:            values["regn_id"],
		Age:               values["age"],
		Gender:            values["gender"],
		Height:            values["height"],
		Weight:            values["weight"],
		WeeklyCalorieGoal: values["weekly_calorie_goal"],
	}
	if pkg.Trimmed(values, "weekly_calorie_goal") == "" {
		input.WeeklyCalorieGoal = strconv.FormatFloat(handler.store.DefaultGoal(), 'f', -1, 64)
	}

	p, err := ParseProfileInput(input)
	if err != nil {
		if errors.Is(err, ErrInvalidProfileInput) {
			span.SetStatus(codes.Error, "invalid-input")
			http.Error(w, fmt.Sprintf("Invalid input: %s", err), http.StatusBadRequest)
			return
		}
		log.Errorf("save profile: %s", err)
		http.Error(w, "failed to save profile", http.StatusInternalServerError)
		return
	}

	// encode first, a profile that cannot be served back is not stored
	respJson, err := json.Marshal(SaveProfileResponse{
		Profile: p,
		Message: fmt.Sprintf("User info saved! BMI=%.1f, BMR=%.0f kcal/day", p.BMI, p.BMR),
	})
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "failed to save profile", http.StatusInternalServerError)
		return
	}

	handler.store.Save(p)
	log.Debugf("profile saved for [%s]", p.Name)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	p, ok := handler.store.Get()
	if !ok {
		http.Error(w, "profile not saved", http.StatusNotFound)
		return
	}

	respJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
