package transport

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

// LambdaAdapter bridges API Gateway V2 HTTP events onto the shared HTTP
// handler, so the Lambda entrypoint serves the same routes as cmd/server.
type LambdaAdapter struct {
	proxy *httpadapter.HandlerAdapterV2
}

// NewLambdaAdapter wraps the given handler for AWS Lambda.
func NewLambdaAdapter(handler http.Handler) *LambdaAdapter {
	return &LambdaAdapter{proxy: httpadapter.NewV2(handler)}
}

// Handle satisfies the aws-lambda-go handler signature for API Gateway V2
// HTTP APIs.
func (a *LambdaAdapter) Handle(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return a.proxy.ProxyWithContext(ctx, request)
}
