package services

import (
	"context"
	"fmt"
	"time"

	"github.com/icb-gaia/app-cadastro/internal/config"
	"github.com/icb-gaia/app-cadastro/internal/logging"
	"github.com/icb-gaia/app-cadastro/internal/models"
	"github.com/icb-gaia/app-cadastro/internal/observability"
	"github.com/icb-gaia/app-cadastro/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CadastroService owns all reads and writes against the cadastros collection
type CadastroService struct{}

// NewCadastroService creates a new CadastroService
func NewCadastroService() *CadastroService {
	return &CadastroService{}
}

// Create inserts a new cadastro with status "pendente" and appends the
// corresponding audit entry, returning the assigned numeric id.
//
// The duplicate-email check before the insert is advisory only; the unique
// index on email is the authoritative guarantee, and an index violation during
// the insert maps to the same ErrEmailAlreadyRegistered.
func (s *CadastroService) Create(ctx context.Context, cadastro *models.Cadastro) (int64, error) {
	collection := config.MongoDB.Collection(config.AppConfig.CadastrosCollection)

	err := collection.FindOne(ctx,
		bson.M{"email": cadastro.Email},
		options.FindOne().SetProjection(bson.M{"id": 1}),
	).Err()
	if err == nil {
		return 0, models.ErrEmailAlreadyRegistered
	}
	if err != mongo.ErrNoDocuments {
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return 0, fmt.Errorf("failed to check for existing email: %w", err)
	}

	id, err := s.nextSequence(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	cadastro.ID = id
	cadastro.Status = models.StatusPendente
	cadastro.CreatedAt = now
	cadastro.UpdatedAt = now

	if _, err := collection.InsertOne(ctx, cadastro); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the race against a concurrent submission with the same email
			return 0, models.ErrEmailAlreadyRegistered
		}
		observability.DatabaseOperations.WithLabelValues("insert", "error").Inc()
		return 0, fmt.Errorf("failed to insert cadastro: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()

	// The cadastro is already persisted at this point, so an audit failure is
	// logged loudly instead of surfacing an error for a successful creation.
	if err := utils.LogCadastroCreated(ctx, id); err != nil {
		logging.Logger.Error("cadastro created but audit entry failed",
			zap.Int64("cadastro_id", id),
			zap.Error(err))
	}

	return id, nil
}

// List returns one page of cadastros ordered by creation time, most recent
// first, optionally filtered by status
func (s *CadastroService) List(ctx context.Context, page, limit int, status string) (*models.PaginatedCadastros, error) {
	collection := config.MongoDB.Collection(config.AppConfig.CadastrosCollection)

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("count", "error").Inc()
		return nil, fmt.Errorf("failed to count cadastros: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOpts)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return nil, fmt.Errorf("failed to list cadastros: %w", err)
	}
	defer cursor.Close(ctx)

	cadastros := []models.Cadastro{}
	if err := cursor.All(ctx, &cadastros); err != nil {
		return nil, fmt.Errorf("failed to decode cadastros: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("find", "success").Inc()

	return &models.PaginatedCadastros{
		Cadastros:  cadastros,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Update applies a moderation change (status and/or notes) to a cadastro and
// appends one audit entry describing it. Setting the status to "contatado"
// also stamps contato_realizado_em.
func (s *CadastroService) Update(ctx context.Context, id int64, input models.UpdateCadastroInput) error {
	if input.Status == nil && input.Observacoes == nil {
		return models.ErrNothingToUpdate
	}

	now := time.Now().UTC()
	set := bson.M{"updated_at": now}
	detalhes := "Observações atualizadas"

	if input.Status != nil {
		if !models.IsValidStatus(*input.Status) {
			return models.ErrInvalidStatus
		}
		set["status"] = *input.Status
		detalhes = fmt.Sprintf("Status alterado para: %s", *input.Status)

		if *input.Status == models.StatusContatado {
			set["contato_realizado_em"] = now
		}
	}
	if input.Observacoes != nil {
		set["observacoes"] = *input.Observacoes
	}

	collection := config.MongoDB.Collection(config.AppConfig.CadastrosCollection)
	result, err := collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("update", "error").Inc()
		return fmt.Errorf("failed to update cadastro: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrCadastroNotFound
	}
	observability.DatabaseOperations.WithLabelValues("update", "success").Inc()

	if err := utils.LogCadastroUpdated(ctx, id, detalhes); err != nil {
		logging.Logger.Error("cadastro updated but audit entry failed",
			zap.Int64("cadastro_id", id),
			zap.Error(err))
	}

	return nil
}

// nextSequence atomically increments and returns the numeric id sequence for
// cadastros
func (s *CadastroService) nextSequence(ctx context.Context) (int64, error) {
	collection := config.MongoDB.Collection(config.AppConfig.CountersCollection)

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": config.AppConfig.CadastrosCollection},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("sequence", "error").Inc()
		return 0, fmt.Errorf("failed to allocate cadastro id: %w", err)
	}

	return counter.Seq, nil
}
