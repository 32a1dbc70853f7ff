package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dr-aiuta/rescuetimedashboard/internal/service"
)

type Server struct {
	mx               *chi.Mux
	goalsService     service.GoalsServiceI
	dashboardService service.DashboardServiceI
}

type ServicesList struct {
	GoalsService     service.GoalsServiceI
	DashboardService service.DashboardServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		goalsService:     servicesOptions.GoalsService,
		dashboardService: servicesOptions.DashboardService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", s.GetDashboard)
		r.Route("/goals", func(r chi.Router) {
			r.Get("/", s.GetGoals)
			r.Post("/", s.CreateGoal)
			r.Get("/progress", s.GetGoalsProgress)
			r.Put("/{id}", s.UpdateGoal)
			r.Delete("/{id}", s.DeleteGoal)
		})
	})
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}
