package http

import (
	"net/http"
	"strings"

	"github.com/rmohit9/Healthcare-Portal/internal/delivery/http/handler"
	"github.com/rmohit9/Healthcare-Portal/internal/delivery/http/middleware"
	"github.com/rmohit9/Healthcare-Portal/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	blogHandler       *handler.BlogHandler
	categoryHandler   *handler.CategoryHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	blogHandler *handler.BlogHandler,
	categoryHandler *handler.CategoryHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		blogHandler:       blogHandler,
		categoryHandler:   categoryHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Blog routes (protected, role checks happen in the usecases)
	blog := api.PathPrefix("/blog").Subrouter()
	blog.Use(r.authMiddleware.Authenticate)
	blog.HandleFunc("", r.blogHandler.BlogHome).Methods(http.MethodGet)
	blog.HandleFunc("/my-posts", r.blogHandler.MyPosts).Methods(http.MethodGet)
	blog.HandleFunc("/browse", r.blogHandler.Browse).Methods(http.MethodGet)

	blog.HandleFunc("/posts", r.blogHandler.CreatePost).Methods(http.MethodPost)
	blog.HandleFunc("/posts/{slug}", r.blogHandler.GetPost).Methods(http.MethodGet)
	blog.HandleFunc("/posts/{slug}", r.blogHandler.UpdatePost).Methods(http.MethodPut)
	blog.HandleFunc("/posts/{slug}", r.blogHandler.DeletePost).Methods(http.MethodDelete)

	blog.HandleFunc("/categories", r.categoryHandler.ListCategories).Methods(http.MethodGet)
	blog.HandleFunc("/categories", r.categoryHandler.CreateCategory).Methods(http.MethodPost)
	blog.HandleFunc("/categories/{slug}", r.blogHandler.CategoryPosts).Methods(http.MethodGet)
	blog.HandleFunc("/categories/{slug}/info", r.categoryHandler.GetCategory).Methods(http.MethodGet)

	// mux reports a method mismatch inside a subrouter as 404, so unsupported
	// methods are answered here, ahead of authentication.
	allowMethods(api, "/health", http.MethodGet)
	allowMethods(api, "/auth/register", http.MethodPost)
	allowMethods(api, "/auth/login", http.MethodPost)
	allowMethods(api, "/auth/refresh-token", http.MethodPost)
	allowMethods(api, "/auth/logout", http.MethodPost)
	allowMethods(api, "/auth/me", http.MethodGet)
	allowMethods(api, "/blog", http.MethodGet)
	allowMethods(api, "/blog/my-posts", http.MethodGet)
	allowMethods(api, "/blog/browse", http.MethodGet)
	allowMethods(api, "/blog/posts", http.MethodPost)
	allowMethods(api, "/blog/posts/{slug}", http.MethodGet, http.MethodPut, http.MethodDelete)
	allowMethods(api, "/blog/categories", http.MethodGet, http.MethodPost)
	allowMethods(api, "/blog/categories/{slug}", http.MethodGet)
	allowMethods(api, "/blog/categories/{slug}/info", http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

// allowMethods routes every method except allowed on path to a 405 carrying an Allow header.
func allowMethods(router *mux.Router, path string, allowed ...string) {
	allow := strings.Join(allowed, ", ")

	router.HandleFunc(path, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Allow", allow)
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	}).MatcherFunc(func(req *http.Request, _ *mux.RouteMatch) bool {
		for _, method := range allowed {
			if req.Method == method {
				return false
			}
		}
		return true
	})
}
