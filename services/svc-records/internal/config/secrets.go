package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/architeacher/filtersort/services/svc-records/internal/ports"
	"github.com/cenkalti/backoff/v5"
	"github.com/hashicorp/vault/api"
)

const (
	authMethodToken   = "token"
	authMethodAppRole = "approle"

	secretsPathFormat = "apps/data/%s"
)

var (
	ErrSecretsDisabled = errors.New("secrets storage is not enabled")
	ErrSecretsAuth     = errors.New("secrets storage authentication failed")
	ErrSecretsFormat   = errors.New("unexpected secret format")
)

// LoadSecrets logs into Vault and overlays the database settings found in the
// service's KV v2 secret onto cfg. Keys use the environment variable names,
// e.g. POSTGRES_PASSWORD; anything else in the secret is ignored. It returns
// the secret version that was applied.
func LoadSecrets(ctx context.Context, cfg *ServiceConfig, repo ports.SecretsRepository) (int64, error) {
	if !cfg.Secrets.Enabled {
		return 0, ErrSecretsDisabled
	}

	if err := authenticate(ctx, repo, cfg.Secrets); err != nil {
		return 0, err
	}

	data, version, err := readSecret(ctx, repo, cfg.Secrets)
	if err != nil {
		return 0, err
	}

	if err := applyDatabaseSecrets(&cfg.Database, data); err != nil {
		return 0, err
	}

	return version, nil
}

func authenticate(ctx context.Context, repo ports.SecretsRepository, cfg Secrets) error {
	switch strings.ToLower(cfg.AuthMethod) {
	case authMethodToken:
		if cfg.Token == "" {
			return fmt.Errorf("%w: VAULT_TOKEN is required for token auth", ErrSecretsAuth)
		}

		repo.SetToken(cfg.Token)

		return nil
	case authMethodAppRole:
		if cfg.RoleID == "" || cfg.SecretID == "" {
			return fmt.Errorf("%w: VAULT_ROLE_ID and VAULT_SECRET_ID are required for approle auth", ErrSecretsAuth)
		}

		resp, err := repo.WriteWithContext(ctx, "auth/approle/login", map[string]any{
			"role_id":   cfg.RoleID,
			"secret_id": cfg.SecretID,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSecretsAuth, err)
		}

		if resp == nil || resp.Auth == nil {
			return fmt.Errorf("%w: no auth info returned", ErrSecretsAuth)
		}

		repo.SetToken(resp.Auth.ClientToken)

		return nil
	default:
		return fmt.Errorf("%w: unsupported auth method %q", ErrSecretsAuth, cfg.AuthMethod)
	}
}

func readSecret(ctx context.Context, repo ports.SecretsRepository, cfg Secrets) (map[string]any, int64, error) {
	path := fmt.Sprintf(secretsPathFormat, cfg.MountPath)

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	secret, err := backoff.Retry(
		ctx,
		func() (*api.Secret, error) { return repo.GetSecrets(ctx, path) },
		backoff.WithMaxTries(cfg.MaxRetries+1),
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("reading secret %s: %w", path, err)
	}

	if secret == nil || secret.Data == nil {
		return nil, 0, fmt.Errorf("%w: nothing stored at %s", ErrSecretsFormat, path)
	}

	data, ok := secret.Data["data"].(map[string]any)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s has no data section", ErrSecretsFormat, path)
	}

	return data, secretVersion(secret.Data["metadata"]), nil
}

func secretVersion(metadata any) int64 {
	fields, ok := metadata.(map[string]any)
	if !ok {
		return 0
	}

	switch v := fields["version"].(type) {
	case json.Number:
		version, _ := v.Int64()

		return version
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func applyDatabaseSecrets(db *Database, data map[string]any) error {
	for key, raw := range data {
		value, ok := raw.(string)
		if !ok || value == "" {
			continue
		}

		switch key {
		case "POSTGRES_HOST":
			db.Host = value
		case "POSTGRES_PORT":
			port, err := strconv.ParseUint(value, 10, 16)
			if err != nil {
				return fmt.Errorf("%w: POSTGRES_PORT: %w", ErrSecretsFormat, err)
			}

			db.Port = uint(port)
		case "POSTGRES_DATABASE":
			db.Database = value
		case "POSTGRES_USERNAME":
			db.Username = value
		case "POSTGRES_PASSWORD":
			db.Password = value
		}
	}

	return nil
}
