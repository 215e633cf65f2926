package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"flatmatch/internal/adapter/api"
	"flatmatch/internal/adapter/api/handler"
	apimiddleware "flatmatch/internal/adapter/api/middleware"
	"flatmatch/internal/adapter/api/router"
	"flatmatch/internal/adapter/repository"
	"flatmatch/internal/infrastructure/firebase"
	"flatmatch/internal/infrastructure/storage"
	"flatmatch/internal/infrastructure/websocket"
	"flatmatch/internal/usecase"
	"flatmatch/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	serviceAccountPath := ""
	if serviceAccountJSON == "" {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
	}

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		serviceAccountPath,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, userRepo)
	matchUseCase := usecase.NewMatchUseCase(profileRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo)

	wsManager := websocket.NewManager()
	websocket.NewChatStream(ctx, wsManager, chatRepo, chatUseCase)
	wsManager.Start(ctx)

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	handler.Setup(authUseCase, profileUseCase, matchUseCase, chatUseCase)
	handler.SetupHealthHandler(firebaseAuthClient)
	handler.SetupFileHandler(storageClient)
	handler.SetupDevTokenHandler(firebaseAuthClient, userRepo)
	handler.SetupWebSocketHandler(wsManager, authMiddleware)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(apimiddleware.RequestTimeout(cfg.StoreTimeout))

	e.Validator = api.NewValidator()

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupFileRouter(e, authMiddleware)
	router.SetupWebSocketRouter(e)
	router.SetupDevRouter(e, cfg.Environment)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
