package app

import (
	"context"
	"fmt"
	"log/slog"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
	codecHTTP "github.com/allisson/linkcodec/internal/codec/http"
	codecService "github.com/allisson/linkcodec/internal/codec/service"
	codecUseCase "github.com/allisson/linkcodec/internal/codec/usecase"
)

// KMSService returns the KMS service used to unwrap a KMS-encrypted codec key.
func (c *Container) KMSService() codecService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = codecService.NewKMSService()
	})
	return c.kmsService
}

// Codec returns the token codec built from CODEC_KEY and CODEC_IV.
// Missing or mis-sized key material fails here, at startup.
func (c *Container) Codec() (codecService.TokenCodec, error) {
	var err error
	c.codecInit.Do(func() {
		c.codec, err = c.initCodec()
		if err != nil {
			c.setInitError("codec", err)
		}
	})
	if storedErr := c.initError("codec"); storedErr != nil {
		return nil, storedErr
	}
	return c.codec, nil
}

// CodecUseCase returns the codec use case, wrapped with metrics when enabled.
func (c *Container) CodecUseCase() (codecUseCase.CodecUseCase, error) {
	var err error
	c.codecUseCaseInit.Do(func() {
		c.codecUseCase, err = c.initCodecUseCase()
		if err != nil {
			c.setInitError("codecUseCase", err)
		}
	})
	if storedErr := c.initError("codecUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.codecUseCase, nil
}

// CodecHandler returns the codec HTTP handler.
func (c *Container) CodecHandler() (*codecHTTP.CodecHandler, error) {
	var err error
	c.codecHandlerInit.Do(func() {
		c.codecHandler, err = c.initCodecHandler()
		if err != nil {
			c.setInitError("codecHandler", err)
		}
	})
	if storedErr := c.initError("codecHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.codecHandler, nil
}

func (c *Container) initCodec() (codecService.TokenCodec, error) {
	ctx := context.Background()

	encoding, err := codecDomain.ParseKeyEncoding(c.config.CodecKeyEncoding)
	if err != nil {
		return nil, fmt.Errorf("CODEC_KEY_ENCODING %q: %w", c.config.CodecKeyEncoding, err)
	}

	var keeper codecDomain.KMSKeeper
	if c.config.CodecKMSKeyURI != "" {
		keeper, err = c.KMSService().OpenKeeper(ctx, c.config.CodecKMSKeyURI)
		if err != nil {
			return nil, err
		}
		defer func() {
			if closeErr := keeper.Close(); closeErr != nil {
				c.Logger().Warn("failed to close KMS keeper", slog.Any("error", closeErr))
			}
		}()
	}

	km, err := codecDomain.LoadKeyMaterial(ctx, codecDomain.KeySource{
		Key:      c.config.CodecKey,
		IV:       c.config.CodecIV,
		Encoding: encoding,
	}, keeper)
	if err != nil {
		return nil, fmt.Errorf("failed to load codec key material: %w", err)
	}
	defer km.Close()

	codec, err := codecService.NewAESCBCCodec(km)
	if err != nil {
		return nil, fmt.Errorf("failed to create codec: %w", err)
	}

	c.Logger().Info("codec key material loaded",
		slog.Int("key_bits", len(km.Key)*8),
		slog.Bool("kms", keeper != nil),
	)
	return codec, nil
}

func (c *Container) initCodecUseCase() (codecUseCase.CodecUseCase, error) {
	codec, err := c.Codec()
	if err != nil {
		return nil, fmt.Errorf("failed to get codec for codec use case: %w", err)
	}

	useCase := codecUseCase.NewCodecUseCase(codecUseCase.Config{
		BatchMaxSize:     c.config.CodecBatchMaxSize,
		BatchConcurrency: c.config.CodecBatchConcurrency,
		LinksBaseURL:     c.config.LinksBaseURL,
	}, codec)

	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for codec use case: %w", err)
	}
	return codecUseCase.NewCodecUseCaseWithMetrics(useCase, bm), nil
}

func (c *Container) initCodecHandler() (*codecHTTP.CodecHandler, error) {
	useCase, err := c.CodecUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get codec use case for codec handler: %w", err)
	}
	return codecHTTP.NewCodecHandler(useCase, c.Logger()), nil
}
