package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/icb-gaia/app-cadastro/internal/config"
	"github.com/icb-gaia/app-cadastro/internal/logging"
	"github.com/icb-gaia/app-cadastro/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SeedConfiguracoes contains the initial operator settings. The notification
// destination is read by the webhook notifier on every new cadastro.
var SeedConfiguracoes = []models.Configuracao{
	{
		Chave: "notificacao_email",
		Valor: "secretaria@example.com",
	},
	{
		Chave: "mensagem_boas_vindas",
		Valor: "Obrigado pelo seu interesse! Entraremos em contato em breve.",
	},
}

func main() {
	if err := logging.InitLogger(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	if err := config.LoadConfig(); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	config.InitMongoDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := config.MongoDB.Collection(config.AppConfig.ConfiguracoesCollection)

	for _, setting := range SeedConfiguracoes {
		// Upsert keyed by chave so reruns never duplicate or clobber manual edits
		result, err := collection.UpdateOne(ctx,
			bson.M{"chave": setting.Chave},
			bson.M{"$setOnInsert": bson.M{"chave": setting.Chave, "valor": setting.Valor}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Fatalf("failed to seed configuracao %q: %v", setting.Chave, err)
		}

		if result.UpsertedCount > 0 {
			fmt.Printf("seeded configuracao %q\n", setting.Chave)
		} else {
			fmt.Printf("configuracao %q already present, skipped\n", setting.Chave)
		}
	}

	fmt.Println("done")
}
