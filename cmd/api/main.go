package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"phonedeck/internal/adapter/api"
	"phonedeck/internal/adapter/api/handler"
	apimiddleware "phonedeck/internal/adapter/api/middleware"
	"phonedeck/internal/adapter/api/router"
	"phonedeck/internal/adapter/repository"
	"phonedeck/internal/infrastructure/firebase"
	"phonedeck/internal/infrastructure/ratelimit"
	"phonedeck/internal/infrastructure/storage"
	"phonedeck/internal/usecase"
	"phonedeck/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	phoneRepo := repository.NewFirestorePhoneRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	compareRepo := repository.NewFirestoreCompareRepository(firestoreClient)
	adminRepo := repository.NewFirestoreAdminRepository(firestoreClient)
	blogRepo := repository.NewFirestoreBlogRepository(firestoreClient)

	authClient := firebase.NewAuthClient(fbAuth)

	phoneUseCase := usecase.NewPhoneUseCase(phoneRepo)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, phoneRepo)
	compareUseCase := usecase.NewCompareUseCase(compareRepo, phoneRepo)
	adminUseCase := usecase.NewAdminUseCase(adminRepo, cfg.SuperAdminEmail)
	blogUseCase := usecase.NewBlogUseCase(blogRepo)

	handler.Setup(phoneUseCase, wishlistUseCase, compareUseCase, adminUseCase, blogUseCase)
	handler.SetupUploadHandler(storageClient)
	handler.SetupHealthHandler(authClient)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(adminUseCase)

	router.Setup(e, authMiddleware, adminMiddleware, limiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
