package main

import (
	"context"

	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autogirlng/muvment-customer-sub002/internal/checkout"
	"github.com/autogirlng/muvment-customer-sub002/internal/content"
	"github.com/autogirlng/muvment-customer-sub002/internal/dashboard"
	"github.com/autogirlng/muvment-customer-sub002/internal/geo"
	"github.com/autogirlng/muvment-customer-sub002/internal/session"
	"github.com/autogirlng/muvment-customer-sub002/internal/status"
	"github.com/autogirlng/muvment-customer-sub002/internal/vehicles"
	"github.com/autogirlng/muvment-customer-sub002/internal/wizard"
	"github.com/autogirlng/muvment-customer-sub002/pkg/analytics"
	"github.com/autogirlng/muvment-customer-sub002/pkg/app"
	"github.com/autogirlng/muvment-customer-sub002/pkg/config"
	"github.com/autogirlng/muvment-customer-sub002/pkg/contracts"
	"github.com/autogirlng/muvment-customer-sub002/pkg/gateway"
	"github.com/autogirlng/muvment-customer-sub002/pkg/sealer"
)

const ServiceName = "customer"

// compositeHandler registers every feature handler on the app router.
type compositeHandler struct {
	handlers []contracts.Handler
}

func (c *compositeHandler) RegisterRoutes(router *httprouter.Router) {
	for _, h := range c.handlers {
		h.RegisterRoutes(router)
	}
}

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting customer service")

	mongoClient := connectMongo(cfg)
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			cfg.Log.Error("Mongo disconnect failed", "error", err)
		}
	}()
	db := mongoClient.Database(cfg.MongoDatabaseName)
	ensureIndexes(cfg, db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	events := analytics.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaAnalyticsTopic, cfg.Log)
	defer func() {
		if err := events.Close(); err != nil {
			cfg.Log.Error("Analytics publisher close failed", "error", err)
		}
	}()

	appHandler := initHandlers(cfg, db, redisClient, events)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, mongoClient, appHandler)
	serverApp.Run()
}

func connectMongo(cfg *config.Config) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		cfg.Log.Fatal("Mongo connection failed", "error", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		cfg.Log.Fatal("Mongo ping failed", "error", err)
	}

	cfg.Log.Info("Mongo connected", "database", cfg.MongoDatabaseName)
	return client
}

func ensureIndexes(cfg *config.Config, db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	if err := session.EnsureIndexes(ctx, db); err != nil {
		cfg.Log.Fatal("Session index creation failed", "error", err)
	}
	if err := wizard.EnsureIndexes(ctx, db); err != nil {
		cfg.Log.Fatal("Draft index creation failed", "error", err)
	}
	if err := checkout.EnsureIndexes(ctx, db); err != nil {
		cfg.Log.Fatal("Checkout index creation failed", "error", err)
	}
}

func initHandlers(cfg *config.Config, db *mongo.Database, redisClient *redis.Client, events analytics.Publisher) contracts.Handler {
	gw := gateway.New(gateway.Options{
		BaseURL:  cfg.APIBaseURL,
		Timeout:  cfg.APITimeout,
		ProbeTTL: cfg.HealthProbeTTL,
		Log:      cfg.Log,
	})
	accounts := gateway.NewAccountClient(gw)
	bookings := gateway.NewBookingClient(gw)
	vehicleClient := gateway.NewVehicleClient(gw)
	contentClient := gateway.NewContentClient(gw)

	seal, err := sealer.New(cfg.SessionSealKey)
	if err != nil {
		cfg.Log.Fatal("Session seal key rejected", "error", err)
	}
	codec := session.NewCookieCodec(seal, cfg.SessionTTL, cfg.SecureCookies)
	sessionRepo := session.NewMongoRepository(db)
	sessionManager := session.NewManager(sessionRepo, codec, accounts, cfg.SessionTTL, cfg.TokenRefreshWindow, cfg.Log)
	sessions := session.NewMiddleware(sessionManager, cfg.Log)

	draftRepo := wizard.NewMongoDraftRepository(db)
	wizardController := wizard.NewController(draftRepo, wizard.NewDraftValidator(), cfg.Log)

	checkoutRepo := checkout.NewMongoRepository(db)
	checkoutService := checkout.NewService(draftRepo, checkoutRepo, bookings, events, cfg.Log)

	vehicleService := vehicles.NewService(vehicleClient, cfg.Log)
	dashboardService := dashboard.NewService(accounts, bookings, cfg.Log)
	contentService := content.NewService(contentClient, cfg.Log)

	geocoder := geo.NewHTTPGeocoder(cfg.GeoAPIBaseURL, cfg.GeoAPIKey, cfg.APITimeout)
	geoCache := geo.NewRedisCache(redisClient, cfg.Log)
	geoService := geo.NewService(geocoder, geoCache, cfg.GeoCacheTTL, cfg.Log)

	cfg.Log.Info("Customer services initialized", "database", cfg.MongoDatabaseName)

	return &compositeHandler{handlers: []contracts.Handler{
		status.NewConnectivityHandler(gw, cfg.Log),
		session.NewAuthHandler(sessionManager, sessions, accounts, cfg.Log),
		wizard.NewHandler(wizardController, sessions, events, cfg.Log),
		checkout.NewHandler(checkoutService, sessions, cfg.Log),
		vehicles.NewHandler(vehicleService, sessions, events, cfg.Log),
		dashboard.NewHandler(dashboardService, sessions, cfg.Log),
		content.NewHandler(contentService, sessions, cfg.Log),
		geo.NewHandler(geoService, cfg.Log),
	}}
}
