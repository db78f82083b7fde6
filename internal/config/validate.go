package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	if c.Import.BatchSize <= 0 {
		return fmt.Errorf("import.batch_size must be > 0 (got %d)", c.Import.BatchSize)
	}
	if c.Import.MaxRows <= 0 {
		return fmt.Errorf("import.max_rows must be > 0 (got %d)", c.Import.MaxRows)
	}
	if c.Import.SampleRows < 0 {
		return fmt.Errorf("import.sample_rows must be >= 0 (got %d)", c.Import.SampleRows)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port (got %d)", c.Server.Port)
	}

	return nil
}
