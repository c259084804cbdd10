package logger

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

const (
	logIDKey   = "logID"
	requestKey = "request"
)

type (
	logCtxKey struct{}
)

var logCtx logCtxKey

type LogID [8]byte

func (lid LogID) String() string {
	return hex.EncodeToString(lid[:])
}

var nilLogID = LogID{}

func (lid LogID) IsValid() bool {
	return !bytes.Equal(lid[:], nilLogID[:])
}

type logContext struct {
	StartTime time.Time
	RequestID string
	LogID     LogID
}

func newLogContext(logID LogID) *logContext {
	return &logContext{
		LogID:     logID,
		StartTime: time.Now(),
	}
}

// WithRequestID stamps the request identifier onto the log context so every
// log line for the request carries it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	lgCtx, ok := ctx.Value(&logCtx).(*logContext)
	if !ok {
		return ctx
	}
	lgCtx.RequestID = requestID
	return ctx
}

func getAttrs(ctx context.Context) []zap.Field {
	lgCtx, _ := ctx.Value(&logCtx).(*logContext)
	if lgCtx == nil {
		return nil
	}

	attrs := make([]zap.Field, 0, 2)
	attrs = append(attrs, zap.String(logIDKey, lgCtx.LogID.String()))
	if lgCtx.RequestID != "" {
		attrs = append(attrs, zap.String(requestKey, lgCtx.RequestID))
	}
	return attrs
}

type IDGenerator interface {
	NewLogID(ctx context.Context) LogID
}

type randomIDGenerator struct {
	randSource *rand.ChaCha8
}

var _ IDGenerator = &randomIDGenerator{}

// NewLogID returns a non-zero log ID from a randomly-chosen sequence.
func (gen *randomIDGenerator) NewLogID(context.Context) LogID {
	sid := LogID{}
	for {
		_, _ = gen.randSource.Read(sid[:])
		if sid.IsValid() {
			break
		}
	}
	return sid
}

func defaultIDGenerator() IDGenerator {
	gen := &randomIDGenerator{}
	var seed [32]byte
	_ = binary.Read(crand.Reader, binary.LittleEndian, &seed)
	gen.randSource = rand.NewChaCha8(seed)
	return gen
}
