// Package mockapi is an in-memory stand-in for the storefront backend, used by
// tests and by the qkart-mockapi development server.
package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"qkart/internal/domain"
)

// Prefix is where the API is mounted, matching the real backend
const Prefix = "/api/v1"

// StartingBalance is credited to every new account
const StartingBalance = 5000

const genericFailure = "Something went wrong. Check the backend console for more details"

// Server serves the storefront endpoints from memory
type Server struct {
	mu         sync.RWMutex
	catalog    []domain.Product
	users      map[string]string // username -> password
	latency    time.Duration
	failStatus int
	hits       map[string]int

	router *mux.Router
	logger *slog.Logger
}

// New creates a server over catalog. logger may be nil.
func New(catalog []domain.Product, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		catalog: append([]domain.Product(nil), catalog...),
		users:   make(map[string]string),
		hits:    make(map[string]int),
		router:  mux.NewRouter(),
		logger:  logger.With("component", "mockapi"),
	}

	api := s.router.PathPrefix(Prefix).Subrouter()
	api.Use(s.middleware)
	api.HandleFunc("/products", s.handleList).Methods(http.MethodGet).Name("list")
	api.HandleFunc("/products/search", s.handleSearch).Methods(http.MethodGet).Name("search")
	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost).Name("register")
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost).Name("login")

	return s
}

// NewHandler returns the endpoints over catalog as a plain handler
func NewHandler(catalog []domain.Product) http.Handler {
	return New(catalog, nil)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SetLatency delays every response by d
func (s *Server) SetLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latency = d
}

// SetFailure makes every request answer with status; 0 restores normal behaviour
func (s *Server) SetFailure(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// Hits returns how many requests reached the named route (list, search, register, login)
func (s *Server) Hits(route string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hits[route]
}

// AddUser seeds an account
func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = password
}

func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unknown"
		if current := mux.CurrentRoute(r); current != nil {
			route = current.GetName()
		}

		s.mu.Lock()
		s.hits[route]++
		latency := s.latency
		failStatus := s.failStatus
		s.mu.Unlock()

		s.logger.Debug("request", "route", route, "url", r.URL.String(), "request_id", r.Header.Get("X-Request-ID"))

		if latency > 0 {
			select {
			case <-time.After(latency):
			case <-r.Context().Done():
				return
			}
		}

		if failStatus != 0 {
			writeJSON(w, failStatus, failure(genericFailure))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	products := append([]domain.Product{}, s.catalog...)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, products)
}

// handleSearch matches the value against name and category, ignoring case
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	value := strings.ToLower(r.URL.Query().Get("value"))

	s.mu.RLock()
	matches := []domain.Product{}
	for _, p := range s.catalog {
		if strings.Contains(strings.ToLower(p.Name), value) || strings.Contains(strings.ToLower(p.Category), value) {
			matches = append(matches, p)
		}
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, matches)
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		writeJSON(w, http.StatusBadRequest, failure("Username and password are required"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[creds.Username]; exists {
		writeJSON(w, http.StatusBadRequest, failure("Username is already taken"))
		return
	}
	s.users[creds.Username] = creds.Password

	writeJSON(w, http.StatusCreated, map[string]any{"success": true})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		writeJSON(w, http.StatusBadRequest, failure("Username and password are required"))
		return
	}

	s.mu.RLock()
	password, exists := s.users[creds.Username]
	s.mu.RUnlock()

	switch {
	case !exists:
		writeJSON(w, http.StatusBadRequest, failure("Username does not exist"))
	case password != creds.Password:
		writeJSON(w, http.StatusBadRequest, failure("Password is incorrect"))
	default:
		writeJSON(w, http.StatusCreated, map[string]any{
			"success":  true,
			"token":    uuid.NewString(),
			"username": creds.Username,
			"balance":  StartingBalance,
		})
	}
}

func failure(message string) map[string]any {
	return map[string]any{"success": false, "message": message}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
