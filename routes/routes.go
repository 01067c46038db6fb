package routes

import (
	"net/http"

	"roshanservice/handlers"

	"go.uber.org/zap"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	logger *zap.Logger,
	userHandler *handlers.UserHandler,
	serviceHandler *handlers.ServiceHandler,
	shopHandler *handlers.ShopHandler,
	slipHandler *handlers.SlipHandler,
) {
	wrap := func(h http.HandlerFunc) http.Handler {
		return withCORS(http.HandlerFunc(handlers.RecoverWrapper(logger, h)))
	}

	// User routes
	http.Handle("/signup", wrap(userHandler.Signup))
	http.Handle("/login", wrap(userHandler.Login))

	// Service record routes
	http.Handle("/services", wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			serviceHandler.CreateService(w, r)
		case http.MethodGet:
			serviceHandler.GetAllServices(w, r)
		case http.MethodPut:
			serviceHandler.UpdateService(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	http.Handle("/services/last-slip", wrap(serviceHandler.LastSlipNumber))
	http.Handle("/services/types", wrap(serviceHandler.ServiceTypes))
	http.Handle("/services/slip-pdf", wrap(slipHandler.ServiceSlipPDF))

	// Shop profile routes
	http.Handle("/shop", wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			shopHandler.SaveShopProfile(w, r)
		case http.MethodGet:
			shopHandler.GetShopProfile(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
}
