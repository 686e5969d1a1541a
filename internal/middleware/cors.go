package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Configure CORS and wrap handler with CORS middleware
func ConfigureCORS(handler http.Handler, allowedOrigins []string) http.Handler {

	corsConfig := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})

	corsHandler := corsConfig.Handler(handler)

	return corsHandler
}
