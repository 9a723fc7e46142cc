package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/drive-console/pkg/config"
	"github.com/doodlesbykumbi/drive-console/pkg/server/middleware"
	"github.com/doodlesbykumbi/drive-console/pkg/server/store"
	gormstore "github.com/doodlesbykumbi/drive-console/pkg/server/store/gorm"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.DriveConfig

	ResourcesStore store.ResourcesStore
	GrantsStore    store.GrantsStore
	HealthStore    store.HealthStore

	JWTMiddleware *middleware.JWTAuthenticator

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.DriveConfig,
	jwtMiddleware *middleware.JWTAuthenticator,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	cors := handlers.CORS(
		handlers.AllowedOriginValidator(cfg.IsOriginAllowed),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)
	srv := &http.Server{
		Handler:      handlers.LoggingHandler(os.Stdout, cors(router)),
		Addr:         host + ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:         router,
		DB:             db,
		Config:         cfg,
		ResourcesStore: gormstore.NewResourcesStore(db),
		GrantsStore:    gormstore.NewGrantsStore(db),
		HealthStore:    gormstore.NewHealthStore(db),
		JWTMiddleware:  jwtMiddleware,
		srv:            srv,
	}
}

// Handler returns the full handler chain: access log, CORS, router.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Addr() string {
	return s.srv.Addr
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
