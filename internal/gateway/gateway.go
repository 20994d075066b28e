// internal/gateway/gateway.go
// Package gateway implements the submission boundary: it carries a
// finished application to the external intake endpoint. The engine only
// sees the wizard.SubmissionGateway interface; tests substitute a
// synchronous fake.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/xeipuuv/gojsonschema"

	commonerrors "pageant-wizard/internal/common/errors"
	commonhttp "pageant-wizard/internal/common/http"
	"pageant-wizard/internal/common/logger"
	"pageant-wizard/internal/models"
)

// HTTPGateway POSTs the application record as JSON to the configured
// intake URL. Before anything leaves the process the payload is checked
// against the submission schema; a payload the schema rejects never hits
// the wire.
type HTTPGateway struct {
	url    string
	client *commonhttp.Client
	schema *gojsonschema.Schema
	logger logger.Logger
}

func NewHTTPGateway(url string, timeout time.Duration, log logger.Logger) (*HTTPGateway, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(submissionSchema))
	if err != nil {
		return nil, fmt.Errorf("compile submission schema: %w", err)
	}
	return &HTTPGateway{
		url:    url,
		client: commonhttp.NewClient(timeout),
		schema: schema,
		logger: log.WithFields(map[string]interface{}{"component": "submission-gateway"}),
	}, nil
}

func (g *HTTPGateway) Submit(ctx context.Context, record *models.ApplicationRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return commonerrors.NewPayloadRejectedError(err.Error())
	}

	result, err := g.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return commonerrors.NewPayloadRejectedError(err.Error())
	}
	if !result.Valid() {
		details := ""
		for _, desc := range result.Errors() {
			if details != "" {
				details += "; "
			}
			details += desc.String()
		}
		return commonerrors.NewPayloadRejectedError(details)
	}

	resp, err := g.client.PostJSON(ctx, g.url, payload)
	if err != nil {
		if ctx.Err() != nil {
			return commonerrors.NewGatewayTimeoutError(err)
		}
		return commonerrors.NewGatewaySubmitFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.logger.Warn("intake endpoint rejected submission", map[string]interface{}{
			"status": resp.StatusCode,
		})
		if resp.StatusCode == http.StatusPaymentRequired {
			return commonerrors.NewPaymentDeclinedError(string(body))
		}
		return commonerrors.NewGatewaySubmitFailedError(
			fmt.Errorf("intake returned status %d: %s", resp.StatusCode, string(body)))
	}

	g.logger.Info("submission accepted", map[string]interface{}{"status": resp.StatusCode})
	return nil
}
