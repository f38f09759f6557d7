package server

import (
	"portfolio-server/confs"
	"portfolio-server/db"
	"portfolio-server/handlers"
	httpHandler "portfolio-server/handlers/http"
	"portfolio-server/repositories"
	"portfolio-server/usecases"
	"portfolio-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	s.app.LoadHTMLGlob("templates/*.html")

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	sessionRepo := repositories.NewSessionPgRepository(s.db)
	aboutRepo := repositories.NewAboutMePgRepository(s.db)
	contactRepo := repositories.NewContactPgRepository(s.db)
	projectRepo := repositories.NewProjectPgRepository(s.db)

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo, sessionRepo)
	portfolioUseCase := usecases.NewPortfolioUseCase(aboutRepo, contactRepo, projectRepo)

	// WebSocket manager pushes preview refreshes to open tabs
	manager := ws.NewManager()
	wsHandler := handlers.NewWSHandler(manager, authUseCase)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	portfolioHandler := httpHandler.NewPortfolioHandler(portfolioUseCase, manager)
	apiAuthHandler := httpHandler.NewAPIAuthHandler(authUseCase)

	// Public pages
	s.app.GET("/", authHandler.ShowWelcome)
	s.app.GET("/login", authHandler.ShowLogin)
	s.app.POST("/login", authHandler.Login)
	s.app.GET("/signup", authHandler.ShowSignup)
	s.app.POST("/signup", authHandler.Signup)
	s.app.GET("/logout", authHandler.Logout)

	// Pages behind a session
	protected := s.app.Group("/", httpHandler.RequireSession(authUseCase))
	{
		protected.GET("/home", portfolioHandler.Home)
		protected.GET("/about", portfolioHandler.ShowAbout)
		protected.POST("/about", portfolioHandler.SaveAbout)
		protected.GET("/projects", portfolioHandler.ShowProjects)
		protected.POST("/projects", portfolioHandler.CreateProject)
		protected.GET("/contact", portfolioHandler.ShowContact)
		protected.POST("/contact", portfolioHandler.SaveContact)
		protected.GET("/preview", portfolioHandler.Preview)
		protected.GET("/edit_project/:id", portfolioHandler.ShowEditProject)
		protected.POST("/edit_project/:id", portfolioHandler.UpdateProject)
		protected.GET("/delete_project/:id", portfolioHandler.DeleteProject)
	}

	// JSON auth endpoints for the setup wizard
	api := s.app.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", apiAuthHandler.Login)
			auth.POST("/signup", apiAuthHandler.Signup)
		}
	}

	s.app.GET("/ws/preview", wsHandler.HandlePreviewWS)

	if err := s.app.Run(confs.ListenAddr()); err != nil {
		panic(err)
	}
}
