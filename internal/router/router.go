package router

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"tamagotchi-api/internal/adapters/auth/token"
	mem "tamagotchi-api/internal/adapters/storage/memory"
	pg "tamagotchi-api/internal/adapters/storage/postgres"
	"tamagotchi-api/internal/domain/interactions"
	"tamagotchi-api/internal/domain/pets"
	"tamagotchi-api/internal/domain/users"
	"tamagotchi-api/internal/middleware"
	"tamagotchi-api/internal/platform/logger"
	"tamagotchi-api/internal/ports/auth"
)

type Options struct {
	// Tokens emite y verifica bearer tokens. Puede ser nil (modo dev):
	// sin rutas /auth y la identidad sale del header X-Debug-User-ID.
	Tokens *token.Manager

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	// CORS permisivo: la API la consumen frontends en otros orígenes.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Debug-User-ID"},
		MaxAge:         300,
	}))

	r.Use(middleware.RequestLog(log))

	var verifier auth.AuthVerifier
	if opts.Tokens != nil {
		verifier = opts.Tokens
	}
	r.Use(middleware.AuthContext(verifier))

	// Los errores siempre salen como JSON, también para rutas desconocidas.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy","message":"Tamagotchi API is running"}`))
	})

	var (
		petRepo  pets.Repository
		userRepo users.Repository
		intRepo  interactions.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		userRepo = pg.NewUsersRepo(opts.DB)
		intRepo = pg.NewInteractionsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		userRepo = mem.NewUserRepo()
		intRepo = mem.NewInteractionRepo()
	}

	// Services por módulo
	intSvc := interactions.NewService(intRepo)
	petsSvc := pets.NewService(petRepo, intSvc)
	usersSvc := users.NewService(userRepo)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	interactions.RegisterRoutes(r, intSvc, petsSvc)

	// Sin token manager no hay manera de firmar: las rutas /auth solo
	// existen cuando hay secret configurado.
	if opts.Tokens != nil {
		users.RegisterRoutes(r, usersSvc, opts.Tokens)
	}

	return r
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
