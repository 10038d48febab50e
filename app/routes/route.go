package routes

import (
	"net/http"

	"goshop/app/configs"
	"goshop/app/handlers"
	"goshop/app/handlers/admin"
	"goshop/app/middlewares"
	"goshop/app/repositories"
	"goshop/app/services"
	"goshop/app/utils/renderer"
	"goshop/app/utils/sessions"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) (http.Handler, error) {
	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		return nil, err
	}

	render := renderer.New()
	validate := validator.New()
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	userRepo := repositories.NewUserRepository(db)
	otpRepo := repositories.NewOtpRepository(db)

	categorySvc := services.NewCategoryService(categoryRepo, validate, env.CategoryMaxDepth)
	catalogSvc := services.NewCatalogService(categoryRepo, productRepo, commentRepo)
	commentSvc := services.NewCommentService(commentRepo, productRepo)
	otpSvc := services.NewOTPService(otpRepo, userRepo, services.NewConsoleSMSSender(), env.OTPTTL, env.OTPMaxAttempts)

	homeHandler := handlers.NewHomeHandler(render, catalogSvc, categoryRepo)
	productHandler := handlers.NewProductHandler(render, catalogSvc)
	commentHandler := handlers.NewCommentHandler(commentSvc)
	authHandler := handlers.NewAuthHandler(render, otpSvc, sessionStore)
	commentAdmin := admin.NewCommentAdminHandler(render, commentSvc)
	categoryAdmin := admin.NewCategoryAdminHandler(render, categorySvc, categoryRepo)
	dashboard := admin.NewDashboardHandler(render, categoryRepo, productRepo, commentSvc)

	router := mux.NewRouter()
	router.Use(middlewares.MethodOverrideMiddleware)
	router.Use(middlewares.UserLoaderMiddleware(userRepo, sessionStore))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/category/{slug}", productHandler.CategoryProducts).Methods("GET")

	accounts := router.PathPrefix("/accounts").Subrouter()
	accounts.HandleFunc("/registration", authHandler.RegistrationGetHandler).Methods("GET")
	accounts.HandleFunc("/registration", authHandler.RegistrationPostHandler).Methods("POST")
	accounts.HandleFunc("/verify-code", authHandler.VerifyGetHandler).Methods("GET")
	accounts.HandleFunc("/verify-code", authHandler.VerifyPostHandler).Methods("POST")
	accounts.HandleFunc("/logout", authHandler.LogoutHandler).Methods("GET")

	comment := router.PathPrefix("/comment").Subrouter()
	comment.Use(middlewares.RequireAuthMiddleware)
	comment.HandleFunc("/{product_slug}", commentHandler.CreateComment).Methods("POST")

	adminRoutes := router.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middlewares.StaffAuthMiddleware)
	adminRoutes.HandleFunc("/dashboard", dashboard.Dashboard).Methods("GET")
	adminRoutes.HandleFunc("/categories", categoryAdmin.List).Methods("GET")
	adminRoutes.HandleFunc("/categories", categoryAdmin.Save).Methods("POST")
	adminRoutes.HandleFunc("/categories/{id}", categoryAdmin.Delete).Methods("DELETE")
	adminRoutes.HandleFunc("/comments", commentAdmin.List).Methods("GET")
	adminRoutes.HandleFunc("/comments/{id}/publish", commentAdmin.Publish).Methods("POST")
	adminRoutes.HandleFunc("/comments/{id}/cancel", commentAdmin.Cancel).Methods("POST")
	adminRoutes.HandleFunc("/comments/{id}/reply", commentAdmin.Reply).Methods("POST")

	// Catch-all product detail route, registered last so it does not
	// shadow the fixed prefixes above.
	router.HandleFunc("/{product_slug}", productHandler.ProductDetail).Methods("GET")

	csrfMiddleware := csrf.Protect(
		keys.AuthKey,
		csrf.Secure(env.AppEnv == "production"),
		csrf.Path("/"),
	)

	return csrfMiddleware(router), nil
}
