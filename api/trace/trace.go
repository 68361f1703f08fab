package trace

import (
	"context"

	"github.com/google/uuid"
)

// 컨텍스트 키 타입은 외부에서 직접 쓰지 못하게 unexported 로 둔다.
type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// GenerateID 는 요청 단위로 고유한 Request ID 를 만든다.
func GenerateID() string {
	return uuid.NewString()
}

// WithRequestID 는 Request ID 를 저장한 새 컨텍스트를 반환한다.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestIDFromContext 는 컨텍스트에서 Request ID 를 조회한다. 없으면 빈 문자열.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}
