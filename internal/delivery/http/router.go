package http

import (
	"net/http"

	"clinic-booking-api/internal/delivery/http/handler"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/pkg/apperrors"
	"clinic-booking-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	appointmentHandler *handler.AppointmentHandler
	examHandler       *handler.ExamHandler
	examResultHandler *handler.ExamResultHandler
	pushTokenHandler  *handler.PushTokenHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	appointmentHandler *handler.AppointmentHandler,
	examHandler *handler.ExamHandler,
	examResultHandler *handler.ExamResultHandler,
	pushTokenHandler *handler.PushTokenHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		appointmentHandler: appointmentHandler,
		examHandler:        examHandler,
		examResultHandler:  examResultHandler,
		pushTokenHandler:   pushTokenHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.NotFoundHandler = http.HandlerFunc(routeNotFound)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// User management (admin only)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.Use(middleware.RequireAdmin)
	users.HandleFunc("", r.userHandler.CreateUser).Methods(http.MethodPost)
	users.HandleFunc("", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	users.HandleFunc("/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Appointment booking (any authenticated role; fine-grained rules in usecase)
	consultas := api.PathPrefix("/consultas").Subrouter()
	consultas.Use(r.authMiddleware.Authenticate)
	consultas.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	consultas.HandleFunc("", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	consultas.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	consultas.HandleFunc("/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	consultas.HandleFunc("/{id}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)

	// Exam booking
	exames := api.PathPrefix("/exames").Subrouter()
	exames.Use(r.authMiddleware.Authenticate)
	exames.HandleFunc("", r.examHandler.CreateExam).Methods(http.MethodPost)
	exames.HandleFunc("", r.examHandler.GetExams).Methods(http.MethodGet)
	exames.HandleFunc("/{id}", r.examHandler.GetExam).Methods(http.MethodGet)
	exames.HandleFunc("/{id}", r.examHandler.UpdateExam).Methods(http.MethodPut)
	exames.HandleFunc("/{id}", r.examHandler.CancelExam).Methods(http.MethodDelete)

	// Exam results (append-only)
	resultados := api.PathPrefix("/resultados").Subrouter()
	resultados.Use(r.authMiddleware.Authenticate)
	resultados.HandleFunc("", r.examResultHandler.CreateResult).Methods(http.MethodPost)
	resultados.HandleFunc("", r.examResultHandler.GetResults).Methods(http.MethodGet)
	resultados.HandleFunc("/{id}", r.examResultHandler.GetResult).Methods(http.MethodGet)

	// Push token registry
	pushTokens := api.PathPrefix("/push-tokens").Subrouter()
	pushTokens.Use(r.authMiddleware.Authenticate)
	pushTokens.HandleFunc("", r.pushTokenHandler.RegisterToken).Methods(http.MethodPost)
	pushTokens.HandleFunc("/{id}", r.pushTokenHandler.DeleteToken).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

func routeNotFound(w http.ResponseWriter, req *http.Request) {
	response.Error(w, http.StatusNotFound, apperrors.CodeRouteNotFound, "Route not found", nil)
}
