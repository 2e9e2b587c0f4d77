package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	cryptoDomain "github.com/allisson/maskd/internal/crypto/domain"
	"github.com/allisson/maskd/internal/http"
	"github.com/allisson/maskd/internal/metrics"
	oprfHTTP "github.com/allisson/maskd/internal/oprf/http"
	oprfService "github.com/allisson/maskd/internal/oprf/service"
	oprfUseCase "github.com/allisson/maskd/internal/oprf/usecase"
)

// MaskKey returns the masking key loaded from configuration.
// The key is loaded from MASK_KEY_ENCRYPTED (unwrapped through the KMS) when
// set, otherwise from MASK_KEY as plain base64.
func (c *Container) MaskKey() (cryptoDomain.SecretKey, error) {
	var err error
	c.maskKeyInit.Do(func() {
		c.maskKey, err = c.initMaskKey()
		if err != nil {
			c.initErrors["maskKey"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["maskKey"]; exists {
		return nil, storedErr
	}
	return c.maskKey, nil
}

// MaskOracle returns the mask oracle service.
func (c *Container) MaskOracle() oprfService.MaskOracle {
	c.maskOracleInit.Do(func() {
		c.maskOracle = oprfService.NewMaskOracle()
	})
	return c.maskOracle
}

// EvaluateUseCase returns the evaluate use case instance.
func (c *Container) EvaluateUseCase() (oprfUseCase.EvaluateUseCase, error) {
	var err error
	c.evaluateUseCaseInit.Do(func() {
		c.evaluateUseCase, err = c.initEvaluateUseCase()
		if err != nil {
			c.initErrors["evaluateUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["evaluateUseCase"]; exists {
		return nil, storedErr
	}
	return c.evaluateUseCase, nil
}

// EvaluateHandler returns the evaluate HTTP handler instance.
func (c *Container) EvaluateHandler() (*oprfHTTP.EvaluateHandler, error) {
	var err error
	c.evaluateHandlerInit.Do(func() {
		c.evaluateHandler, err = c.initEvaluateHandler()
		if err != nil {
			c.initErrors["evaluateHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["evaluateHandler"]; exists {
		return nil, storedErr
	}
	return c.evaluateHandler, nil
}

// HTTPServer returns the HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics HTTP server instance.
// Returns nil if metrics are disabled in configuration.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}

		var provider *metrics.Provider
		provider, err = c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}

		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// initMaskKey loads and validates the masking key from configuration.
func (c *Container) initMaskKey() (cryptoDomain.SecretKey, error) {
	logger := c.Logger()

	if c.config.MaskKeyEncrypted != "" {
		if c.config.KMSKeyURI == "" {
			return nil, fmt.Errorf("MASK_KEY_ENCRYPTED is set but KMS_KEY_URI is not configured")
		}

		ciphertext, err := base64.StdEncoding.DecodeString(c.config.MaskKeyEncrypted)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MASK_KEY_ENCRYPTED: %w", err)
		}

		keeper, err := c.KMSService().OpenKeeper(context.Background(), c.config.KMSKeyURI)
		if err != nil {
			return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
		}
		defer func() {
			if closeErr := keeper.Close(); closeErr != nil {
				logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
			}
		}()

		keyBytes, err := keeper.Decrypt(context.Background(), ciphertext)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt masking key with KMS: %w", err)
		}

		key := cryptoDomain.SecretKey(keyBytes)
		if err := key.Validate(); err != nil {
			cryptoDomain.Zero(key)
			return nil, fmt.Errorf("invalid masking key from KMS: %w", err)
		}

		logger.Info("masking key loaded", slog.String("source", "kms"))
		return key, nil
	}

	if c.config.MaskKey != "" {
		key, err := cryptoDomain.SecretKeyFromBase64(c.config.MaskKey)
		if err != nil {
			return nil, fmt.Errorf("invalid MASK_KEY: %w", err)
		}

		logger.Info("masking key loaded", slog.String("source", "env"))
		return key, nil
	}

	return nil, fmt.Errorf("masking key not configured: set MASK_KEY or MASK_KEY_ENCRYPTED")
}

// initEvaluateUseCase creates the evaluate use case with all its dependencies.
func (c *Container) initEvaluateUseCase() (oprfUseCase.EvaluateUseCase, error) {
	baseUseCase := oprfUseCase.NewEvaluateUseCase(c.MaskOracle(), c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for evaluate use case: %w", err)
		}
		return oprfUseCase.NewEvaluateUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initEvaluateHandler creates the evaluate HTTP handler with all its dependencies.
func (c *Container) initEvaluateHandler() (*oprfHTTP.EvaluateHandler, error) {
	evaluateUseCase, err := c.EvaluateUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluate use case for evaluate handler: %w", err)
	}

	maskKey, err := c.MaskKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get masking key for evaluate handler: %w", err)
	}

	return oprfHTTP.NewEvaluateHandler(evaluateUseCase, maskKey, c.Logger()), nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	evaluateHandler, err := c.EvaluateHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluate handler for http server: %w", err)
	}

	opts := []http.ServerOption{
		http.WithCORS(c.config.CORSEnabled, c.config.CORSAllowOrigins),
	}

	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		opts = append(opts, http.WithHTTPMetrics(
			metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace),
		))
	}

	return http.NewServer(
		c.config.ServerHost,
		c.config.ServerPort,
		c.Logger(),
		evaluateHandler,
		opts...,
	), nil
}
