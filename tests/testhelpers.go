package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/icb-gaia/app-cadastro/internal/config"
	"github.com/icb-gaia/app-cadastro/internal/redisclient"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestContainers holds references to test containers
type TestContainers struct {
	MongoContainer *mongodb.MongoDBContainer
	RedisContainer *redis.RedisContainer
	MongoDB        *mongo.Database
	Cleanup        func()
}

// SetupTestContainers starts MongoDB and Redis containers and points the
// global config at them
func SetupTestContainers(t *testing.T) *TestContainers {
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx,
		"mongo:7.0",
		mongodb.WithUsername("root"),
		mongodb.WithPassword("password"),
	)
	require.NoError(t, err, "Failed to start MongoDB container")

	redisContainer, err := redis.Run(ctx,
		"redis:7-alpine",
	)
	require.NoError(t, err, "Failed to start Redis container")

	mongoURI, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get MongoDB connection string")

	redisURI, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get Redis connection string")

	clientOptions := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	require.NoError(t, err, "Failed to connect to MongoDB")

	err = mongoClient.Ping(ctx, nil)
	require.NoError(t, err, "Failed to ping MongoDB")

	database := mongoClient.Database("cadastro_test")

	redisOpts, err := goredis.ParseURL(redisURI)
	require.NoError(t, err, "Failed to parse Redis connection string")

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{}
	}

	config.AppConfig.MongoURI = mongoURI
	config.AppConfig.MongoDatabase = "cadastro_test"
	config.AppConfig.RedisURI = redisOpts.Addr
	config.AppConfig.CadastrosCollection = "cadastros"
	config.AppConfig.CadastroLogsCollection = "cadastro_logs"
	config.AppConfig.ConfiguracoesCollection = "configuracoes"
	config.AppConfig.CountersCollection = "counters"
	config.AppConfig.AdminToken = "test-admin-token"
	config.AppConfig.SubmissionCooldown = 30 * time.Second
	config.AppConfig.RateLimitMarkerTTL = 5 * time.Minute
	config.AppConfig.ConfigCacheTTL = 10 * time.Minute
	config.AppConfig.CadastroFonte = "website"
	config.AppConfig.NotificationTimeout = 10 * time.Second

	// Set global database references
	config.MongoDB = database
	config.Redis = redisclient.NewClient(goredis.NewClient(redisOpts))

	cleanup := func() {
		ctx := context.Background()
		if mongoClient != nil {
			mongoClient.Disconnect(ctx)
		}
		if mongoContainer != nil {
			mongoContainer.Terminate(ctx)
		}
		if redisContainer != nil {
			redisContainer.Terminate(ctx)
		}
	}

	return &TestContainers{
		MongoContainer: mongoContainer,
		RedisContainer: redisContainer,
		MongoDB:        database,
		Cleanup:        cleanup,
	}
}

// CleanupDatabase drops all collections in the test database
func CleanupDatabase(t *testing.T, db *mongo.Database) {
	ctx := context.Background()
	collections, err := db.ListCollectionNames(ctx, map[string]interface{}{})
	require.NoError(t, err, "Failed to list collections")

	for _, collection := range collections {
		err := db.Collection(collection).Drop(ctx)
		require.NoError(t, err, fmt.Sprintf("Failed to drop collection %s", collection))
	}
}
