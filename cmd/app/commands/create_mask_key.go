package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/maskd/internal/crypto/domain"
	cryptoService "github.com/allisson/maskd/internal/crypto/service"
)

// RunCreateMaskKey generates a cryptographically secure 32-byte masking key.
// Key material is zeroed from memory after encoding.
//
// With no KMS flags, the key is printed as plain base64 for MASK_KEY. When
// kmsProvider and kmsKeyURI are both set, the key is encrypted with the KMS
// first and printed as MASK_KEY_ENCRYPTED along with the KMS configuration.
//
// Security: Never use the localsecrets provider in production. Use cloud KMS
// providers (gcpkms, awskms, azurekeyvault, hashivault).
func RunCreateMaskKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	w io.Writer,
	kmsProvider string,
	kmsKeyURI string,
) error {
	if (kmsProvider == "") != (kmsKeyURI == "") {
		return fmt.Errorf(
			"--kms-provider and --kms-key-uri must be set together\n\nFor local development, use:\n  --kms-provider=localsecrets --kms-key-uri=\"base64key://<32-byte-base64-key>\"\n\nFor production, use cloud KMS providers:\n  --kms-provider=gcpkms --kms-key-uri=\"gcpkms://projects/.../cryptoKeys/...\"\n  --kms-provider=awskms --kms-key-uri=\"awskms:///alias/...\"\n  --kms-provider=azurekeyvault --kms-key-uri=\"azurekeyvault://...\"",
		)
	}

	key, err := cryptoDomain.GenerateSecretKey()
	if err != nil {
		return fmt.Errorf("failed to generate masking key: %w", err)
	}
	defer cryptoDomain.Zero(key)

	if kmsProvider == "" {
		fmt.Fprintln(w, "# Masking Key Configuration (Plain Mode)")
		fmt.Fprintln(w, "# Copy this environment variable to your .env file or secrets manager")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "MASK_KEY=\"%s\"\n", key.Base64())
		return nil
	}

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to encrypt masking key with KMS: %w", err)
	}

	fmt.Fprintln(w, "# Masking Key Configuration (KMS Mode)")
	fmt.Fprintln(w, "# Copy these environment variables to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "KMS_PROVIDER=\"%s\"\n", kmsProvider)
	fmt.Fprintf(w, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	fmt.Fprintf(w, "MASK_KEY_ENCRYPTED=\"%s\"\n", base64.StdEncoding.EncodeToString(ciphertext))

	return nil
}
