// Package persistence selects the repository and artifact store backends
// named by the configuration.
package persistence

import (
	"context"
	"fmt"

	"reliant_crm/internal/adapter/persistence/modelstore"
	"reliant_crm/internal/adapter/persistence/repository"
	"reliant_crm/internal/adapter/persistence/sqlstore"
	"reliant_crm/internal/config"
	"reliant_crm/internal/estimation"
	"reliant_crm/internal/infrastructure/database"
	"reliant_crm/internal/infrastructure/logger"
	"reliant_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Stores struct {
	Customers  interfaces.ICustomerRepository
	Catalog    interfaces.ICatalogItemRepository
	Quotations interfaces.IQuotationRepository
	Payments   interfaces.IQuotationPaymentRepository
	Artifacts  estimation.ArtifactStore
}

// Open connects to the configured storage backend. The DynamoDB client is
// created at most once and shared with the DynamoDB artifact store.
func Open(ctx context.Context, cfg config.Config, log *logger.Logger) (*Stores, error) {
	log = logger.OrNop(log).Component("persistence")

	var ddb *dynamodb.Client
	dynamo := func() (*dynamodb.Client, error) {
		if ddb != nil {
			return ddb, nil
		}
		c, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		ddb = c
		return ddb, nil
	}

	s := &Stores{}
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		c, err := dynamo()
		if err != nil {
			return nil, err
		}
		s.Customers = repository.NewCustomerDynamoRepository(c)
		s.Catalog = repository.NewCatalogDynamoRepository(c)
		s.Quotations = repository.NewQuotationDynamoRepository(c)
		s.Payments = repository.NewQuotationPaymentDynamoRepository(c)
	case config.StoragePostgres, config.StorageSQLite:
		db, err := database.OpenSQL(cfg.StorageDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := sqlstore.Migrate(db); err != nil {
			return nil, err
		}
		s.Customers = sqlstore.NewCustomerRepository(db)
		s.Catalog = sqlstore.NewCatalogRepository(db)
		s.Quotations = sqlstore.NewQuotationRepository(db)
		s.Payments = sqlstore.NewQuotationPaymentRepository(db)
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	log.Info("storage ready", "driver", cfg.StorageDriver)

	switch cfg.Model.Store {
	case config.ModelStoreFile:
		s.Artifacts = modelstore.NewFileStore(cfg.Model.Path)
	case config.ModelStoreDynamoDB:
		c, err := dynamo()
		if err != nil {
			return nil, err
		}
		s.Artifacts = modelstore.NewDynamoStore(c, cfg.Model.ArtifactID)
	default:
		return nil, fmt.Errorf("unsupported MODEL_STORE %q", cfg.Model.Store)
	}
	log.Info("model store ready", "store", cfg.Model.Store)
	return s, nil
}

// TrainerOptions maps the model configuration onto trainer options.
func TrainerOptions(m config.ModelConfig) estimation.TrainerOptions {
	return estimation.TrainerOptions{
		ArtifactID:   m.ArtifactID,
		Seed:         m.Seed,
		TestFraction: m.TestFraction,
		MinRows:      m.MinRows,
		Ridge:        m.Ridge,
	}
}
