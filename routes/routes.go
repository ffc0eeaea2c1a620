package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agentchat/handlers"
	"agentchat/monitoring"
	"agentchat/websocket"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(
	chatHandler *handlers.ChatHandler,
	historyHandler *handlers.HistoryHandler,
	sessionHandler *handlers.SessionHandler,
	systemHandler *handlers.SystemHandler,
	hub *websocket.Hub,
	accessTokenHash string,
) http.Handler {
	router := mux.NewRouter()

	// Page route
	router.HandleFunc("/", sessionHandler.Index).Methods("GET")

	// Chat routes, behind the optional access token gate
	router.Handle("/chat", handlers.RequireToken(accessTokenHash, http.HandlerFunc(chatHandler.Chat))).Methods("POST")
	router.Handle("/history", handlers.RequireToken(accessTokenHash, http.HandlerFunc(historyHandler.GetHistory))).Methods("GET")
	router.Handle("/ws", handlers.RequireToken(accessTokenHash, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		websocket.ServeWS(hub, w, r)
	}))).Methods("GET")

	// System routes
	router.HandleFunc("/health", systemHandler.Health).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return monitoring.InstrumentHandler(router)
}
