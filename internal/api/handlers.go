package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/dr-aiuta/rescuetimedashboard/internal/error_values"
	"github.com/dr-aiuta/rescuetimedashboard/internal/rescuetime"
	"github.com/dr-aiuta/rescuetimedashboard/internal/service"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/entity"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/httputil"
)

type GoalRequest struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	TargetHours   int      `json:"target_hours"`
	TargetMinutes int      `json:"target_minutes"`
	Category      string   `json:"category"`
	Target        string   `json:"target"`
	Schedule      string   `json:"schedule"`
	Notifications []string `json:"notifications"`
	Enabled       bool     `json:"enabled"`
}

type GetGoalsResponse struct {
	Count int            `json:"count"`
	Goals []*entity.Goal `json:"goals"`
}

type GoalsProgressResponse struct {
	Date     string                `json:"date"`
	Progress []entity.GoalProgress `json:"progress"`
}

func (req *GoalRequest) toService() *service.GoalRequest {
	return &service.GoalRequest{
		Name:          req.Name,
		Type:          req.Type,
		TargetHours:   req.TargetHours,
		TargetMinutes: req.TargetMinutes,
		Category:      req.Category,
		Target:        req.Target,
		Schedule:      req.Schedule,
		Notifications: req.Notifications,
		Enabled:       req.Enabled,
	}
}

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	window, err := windowFromQuery(r)
	if err != nil {
		logger.Error("get dashboard error: invalid date range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date range", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*20)
	defer cancel()
	dashboard, err := s.dashboardService.Dashboard(ctx, window)
	if err != nil {
		var apiErr *rescuetime.APIError
		if errors.As(err, &apiErr) {
			logger.Error("get dashboard error: upstream api error", slog.Int("status", apiErr.Status))
			httputil.WriteErrorResponse(w, http.StatusBadGateway, "upstream api error", nil)
			return
		}
		logger.Error("get dashboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while fetching dashboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
	logger.Info("dashboard provided")
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goals, err := s.goalsService.ListGoals(ctx)
	if err != nil {
		logger.Error("getting goals list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting goals list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetGoalsResponse{
		Count: len(goals),
		Goals: goals,
	})
	logger.Info("goals provided")
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req GoalRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.CreateGoal(ctx, req.toService())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidGoal):
			logger.Error("create goal error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal definition", err)
		case errors.Is(err, errorvalues.ErrGoalExists):
			logger.Error("create goal error: attempt to create existed goal")
			httputil.WriteErrorResponse(w, http.StatusConflict, "goal already exists", nil)
		default:
			logger.Error("create goal error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating goal", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created")
}

func (s *Server) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("goal update error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	var req GoalRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("goal update error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.UpdateGoal(ctx, id, req.toService())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidGoal):
			logger.Error("goal update error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal definition", err)
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("goal update error: unexist goal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		default:
			logger.Error("goal update error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating goal", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal updated")
}

func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("goal deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.goalsService.DeleteGoal(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("goal deletion error: unexist goal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		default:
			logger.Error("goal deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting goal", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("goal deleted")
}

func (s *Server) GetGoalsProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	asOf := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*20)
	defer cancel()
	progress, err := s.goalsService.Progress(ctx, asOf)
	if err != nil {
		var apiErr *rescuetime.APIError
		if errors.As(err, &apiErr) {
			logger.Error("goals progress error: upstream api error", slog.Int("status", apiErr.Status))
			httputil.WriteErrorResponse(w, http.StatusBadGateway, "upstream api error", nil)
			return
		}
		logger.Error("goals progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while evaluating goals", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GoalsProgressResponse{
		Date:     rescuetime.FormatDate(asOf),
		Progress: progress,
	})
	logger.Info("goals progress provided")
}

func windowFromQuery(r *http.Request) (rescuetime.Window, error) {
	q := r.URL.Query()
	if name := q.Get("range"); name != "" {
		window, ok := rescuetime.NamedWindow(name, time.Now())
		if !ok {
			return rescuetime.Window{}, errorvalues.ErrInvalidRange
		}
		return window, nil
	}
	start, end := q.Get("start"), q.Get("end")
	if start == "" && end == "" {
		window, _ := rescuetime.NamedWindow("last7days", time.Now())
		return window, nil
	}
	return rescuetime.ParseWindow(start, end)
}
