package config

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/icb-gaia/app-cadastro/internal/logging"
	"github.com/icb-gaia/app-cadastro/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

var (
	// MongoDB client
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitMongoDB initializes the MongoDB connection
func InitMongoDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatal(err)
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	if err := EnsureIndexes(context.Background()); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}

	logging.Logger.Info("connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
}

// InitRedis initializes the Redis connection
func InitRedis() {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Wrap with traced client
	Redis = redisclient.NewClient(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		// Rate limiting degrades to allow without Redis, so a failure here
		// is logged but does not abort startup.
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err))
		return
	}

	logging.Logger.Info("connected to Redis",
		zap.String("uri", AppConfig.RedisURI))
}

// EnsureIndexes creates the required indexes if they don't exist. The unique
// index on email is the authoritative uniqueness guarantee for cadastros; the
// application-level duplicate check is advisory only.
func EnsureIndexes(ctx context.Context) error {
	logger := logging.Logger.Named("database")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cadastroIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_1").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_-1"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status_1"),
		},
	}
	if _, err := MongoDB.Collection(AppConfig.CadastrosCollection).Indexes().CreateMany(ctx, cadastroIndexes); err != nil {
		logger.Error("failed to create cadastros indexes", zap.Error(err))
		return err
	}

	logIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "cadastro_id", Value: 1}},
			Options: options.Index().SetName("cadastro_id_1"),
		},
	}
	if _, err := MongoDB.Collection(AppConfig.CadastroLogsCollection).Indexes().CreateMany(ctx, logIndexes); err != nil {
		logger.Error("failed to create cadastro_logs indexes", zap.Error(err))
		return err
	}

	configIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "chave", Value: 1}},
			Options: options.Index().SetName("chave_1").SetUnique(true),
		},
	}
	if _, err := MongoDB.Collection(AppConfig.ConfiguracoesCollection).Indexes().CreateMany(ctx, configIndexes); err != nil {
		logger.Error("failed to create configuracoes indexes", zap.Error(err))
		return err
	}

	logger.Info("all required indexes verified")
	return nil
}

// maskMongoURI masks credentials in a MongoDB URI for logging
func maskMongoURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	return "mongodb://****:****@" + uri[at+1:]
}
