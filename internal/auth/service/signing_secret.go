package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// SigningSecretConfig selects where the token signing key comes from.
type SigningSecretConfig struct {
	// PlainSecret is the signing key taken directly from the environment.
	PlainSecret string
	// EncryptedSecret is a base64-encoded ciphertext of the signing key.
	// Takes precedence over PlainSecret when KMSKeyURI is also set.
	EncryptedSecret string
	// KMSKeyURI identifies the KMS key used to decrypt EncryptedSecret.
	// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
	KMSKeyURI string
}

// LoadSigningSecret resolves the token signing key material. When an
// encrypted secret and a KMS key URI are configured, the ciphertext is
// decrypted through gocloud.dev/secrets; otherwise the plain environment
// value is used. The key never touches the database.
func LoadSigningSecret(ctx context.Context, cfg SigningSecretConfig) ([]byte, error) {
	if cfg.EncryptedSecret != "" && cfg.KMSKeyURI != "" {
		keeper, err := secrets.OpenKeeper(ctx, cfg.KMSKeyURI)
		if err != nil {
			return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
		}
		defer keeper.Close()

		ciphertext, err := base64.StdEncoding.DecodeString(cfg.EncryptedSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to decode encrypted signing secret: %w", err)
		}

		plaintext, err := keeper.Decrypt(ctx, ciphertext)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt signing secret: %w", err)
		}

		return plaintext, nil
	}

	if cfg.PlainSecret == "" {
		return nil, fmt.Errorf("auth token secret is not configured")
	}

	return []byte(cfg.PlainSecret), nil
}
