package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akeren/saascribe/internal/log"
)

const envFileVar = "SAASCRIBE_FROM_ENV_FILE"

func writeEnvFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env.test")
	if err := os.WriteFile(path, []byte(envFileVar+"=loaded\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	// Registered through t.Setenv so the value loaded below is rolled back.
	t.Setenv(envFileVar, "")
	if err := os.Unsetenv(envFileVar); err != nil {
		t.Fatalf("unset %s: %v", envFileVar, err)
	}
	return path
}

func TestInitializeEnvFile_LoadsEnvFile(t *testing.T) {
	for _, skip := range []string{"", "false"} {
		skip := skip
		t.Run("SKIP_DOTENV="+skip, func(t *testing.T) {
			t.Setenv("ENV_FILE", writeEnvFile(t))
			t.Setenv("SKIP_DOTENV", skip)

			InitializeEnvFile(log.NewLoggerWithJSONOutput())

			if got := os.Getenv(envFileVar); got != "loaded" {
				t.Fatalf("expected %s=loaded from ENV_FILE, got %q", envFileVar, got)
			}
		})
	}
}

func TestInitializeEnvFile_SkipDotenv(t *testing.T) {
	t.Setenv("ENV_FILE", writeEnvFile(t))
	t.Setenv("SKIP_DOTENV", "true")

	InitializeEnvFile(log.NewLoggerWithJSONOutput())

	if got, ok := os.LookupEnv(envFileVar); ok {
		t.Fatalf("expected %s to stay unset with SKIP_DOTENV=true, got %q", envFileVar, got)
	}
}

func TestInitializeEnvFile_ProcessEnvironmentWins(t *testing.T) {
	t.Setenv("ENV_FILE", writeEnvFile(t))
	t.Setenv("SKIP_DOTENV", "false")
	t.Setenv(envFileVar, "from-process")

	InitializeEnvFile(log.NewLoggerWithJSONOutput())

	if got := os.Getenv(envFileVar); got != "from-process" {
		t.Fatalf("expected process value to win, got %q", got)
	}
}

func TestInitializeEnvFile_MissingFileIsNotFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")
	t.Setenv("ENV_FILE", missing)
	t.Setenv("SKIP_DOTENV", "false")

	InitializeEnvFile(log.NewLoggerWithJSONOutput())
}

func TestValidateAutoMigrateAllowed_AllowsDevLikeEnvs(t *testing.T) {
	allowed := []string{"", "dev", "development", "local", "test", "testing", "DEV", "  Local  "}

	for _, env := range allowed {
		env := env
		t.Run(env, func(t *testing.T) {
			if err := ValidateAutoMigrateAllowed(env); err != nil {
				t.Fatalf("expected no error for env %q, got %v", env, err)
			}
		})
	}
}

func TestValidateAutoMigrateAllowed_RejectsProdAndOtherEnvs(t *testing.T) {
	rejected := []string{"prod", "production", "staging", "preprod", " Production ", "qa"}

	for _, env := range rejected {
		env := env
		t.Run(env, func(t *testing.T) {
			if err := ValidateAutoMigrateAllowed(env); err == nil {
				t.Fatalf("expected error for env %q, got nil", env)
			}
		})
	}
}
