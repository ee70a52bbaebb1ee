package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "STORAGE_DRIVER", "DATABASE_DSN", "MODEL_STORE", "MODEL_SEED", "MODEL_TEST_FRACTION", "MODEL_MIN_ROWS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.Env != "development" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.StorageDriver != StorageDynamoDB {
		t.Fatalf("expected dynamodb storage by default, got %q", cfg.StorageDriver)
	}
	if cfg.Model.Seed != 42 || cfg.Model.TestFraction != 0.2 || cfg.Model.MinRows != 5 {
		t.Fatalf("unexpected model defaults: %+v", cfg.Model)
	}
	if cfg.Model.Store != ModelStoreFile {
		t.Fatalf("expected file model store, got %q", cfg.Model.Store)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("MODEL_SEED", "7")
	t.Setenv("MODEL_TEST_FRACTION", "0.25")
	t.Setenv("MODEL_MIN_ROWS", "not-a-number")

	cfg := Load()
	if cfg.StorageDriver != StorageSQLite {
		t.Fatalf("expected sqlite, got %q", cfg.StorageDriver)
	}
	if cfg.DatabaseDSN == "" {
		t.Fatalf("expected sqlite default dsn")
	}
	if cfg.Model.Seed != 7 || cfg.Model.TestFraction != 0.25 {
		t.Fatalf("unexpected overrides: %+v", cfg.Model)
	}
	if cfg.Model.MinRows != 5 {
		t.Fatalf("invalid int should fall back to default, got %d", cfg.Model.MinRows)
	}
}

func TestLoadPaymentMockMode(t *testing.T) {
	t.Run("off by default", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		if Load().Payments.MockMode {
			t.Fatalf("expected mock mode off")
		}
	})

	t.Run("either variable enables it", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", " Yes ")
		if !Load().Payments.MockMode {
			t.Fatalf("expected mock mode on")
		}
	})
}
