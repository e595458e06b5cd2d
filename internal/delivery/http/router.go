package http

import (
	"net/http"

	"carelink-backend/internal/delivery/http/handler"
	"carelink-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	adminUserHandler        *handler.AdminUserHandler
	doctorDirectoryHandler  *handler.DoctorDirectoryHandler
	patientDirectoryHandler *handler.PatientDirectoryHandler
	blogHandler             *handler.BlogHandler
	referralHandler         *handler.ReferralHandler
	planHandler             *handler.SubscriptionPlanHandler
	authMiddleware          *middleware.AuthMiddleware
	corsMiddleware          *middleware.CORSMiddleware
}

func NewRouter(
	adminUserHandler *handler.AdminUserHandler,
	doctorDirectoryHandler *handler.DoctorDirectoryHandler,
	patientDirectoryHandler *handler.PatientDirectoryHandler,
	blogHandler *handler.BlogHandler,
	referralHandler *handler.ReferralHandler,
	planHandler *handler.SubscriptionPlanHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		adminUserHandler:        adminUserHandler,
		doctorDirectoryHandler:  doctorDirectoryHandler,
		patientDirectoryHandler: patientDirectoryHandler,
		blogHandler:             blogHandler,
		referralHandler:         referralHandler,
		planHandler:             planHandler,
		authMiddleware:          authMiddleware,
		corsMiddleware:          corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Blog routes (public reads)
	api.HandleFunc("/blogs", r.blogHandler.GetAllBlogs).Methods(http.MethodGet)
	api.HandleFunc("/blogs/slug/{slug}", r.blogHandler.GetBlogBySlug).Methods(http.MethodGet)
	api.HandleFunc("/blogs/{id}/comments", r.blogHandler.GetComments).Methods(http.MethodGet)

	// Subscription plan routes (public reads)
	api.HandleFunc("/subscription-plans", r.planHandler.GetAllPlans).Methods(http.MethodGet)

	// Directory aggregations (public reads)
	api.HandleFunc("/admin/doctors/verified-details", r.doctorDirectoryHandler.GetVerifiedDetails).Methods(http.MethodGet)
	api.HandleFunc("/admin/patients", r.patientDirectoryHandler.GetAllPatients).Methods(http.MethodGet)

	// Blog routes (protected)
	blogs := api.PathPrefix("/blogs").Subrouter()
	blogs.Use(r.authMiddleware.Authenticate)
	blogs.HandleFunc("", r.blogHandler.CreateBlog).Methods(http.MethodPost)
	blogs.HandleFunc("/{id}", r.blogHandler.UpdateBlog).Methods(http.MethodPatch)
	blogs.HandleFunc("/{id}", r.blogHandler.DeleteBlog).Methods(http.MethodDelete)
	blogs.HandleFunc("/{id}/like", r.blogHandler.ToggleLike).Methods(http.MethodPost)
	blogs.HandleFunc("/{id}/comments", r.blogHandler.AddComment).Methods(http.MethodPost)
	blogs.HandleFunc("/{id}/shares", r.blogHandler.AddShare).Methods(http.MethodPost)

	// Referral routes (protected)
	referrals := api.PathPrefix("/referrals").Subrouter()
	referrals.Use(r.authMiddleware.Authenticate)
	referrals.HandleFunc("", r.referralHandler.CreateReferral).Methods(http.MethodPost)
	referrals.HandleFunc("/me", r.referralHandler.GetMyReferrals).Methods(http.MethodGet)
	referrals.HandleFunc("/{code}/accept", r.referralHandler.AcceptReferral).Methods(http.MethodPost)
	referrals.HandleFunc("/me/partner-profile", r.referralHandler.GetMyPartnerProfile).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// User management (admin)
	admin.HandleFunc("/users", r.adminUserHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.adminUserHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/activate", r.adminUserHandler.ActivateUser).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{id}/deactivate", r.adminUserHandler.DeactivateUser).Methods(http.MethodPatch)

	// Referral completion (admin)
	admin.HandleFunc("/referrals/{code}/complete", r.referralHandler.CompleteReferral).Methods(http.MethodPost)

	// Subscription plan management (admin)
	plans := api.PathPrefix("/subscription-plans").Subrouter()
	plans.Use(r.authMiddleware.Authenticate)
	plans.Use(middleware.RequireAdmin)
	plans.HandleFunc("/{id}", r.planHandler.UpdatePlan).Methods(http.MethodPut)
	plans.HandleFunc("/{id}", r.planHandler.DeletePlan).Methods(http.MethodDelete)

	benefits := api.PathPrefix("/subscription-plans-benefits").Subrouter()
	benefits.Use(r.authMiddleware.Authenticate)
	benefits.Use(middleware.RequireAdmin)
	benefits.HandleFunc("/{id}", r.planHandler.UpdateBenefit).Methods(http.MethodPut)
	benefits.HandleFunc("/{id}", r.planHandler.DeleteBenefit).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
