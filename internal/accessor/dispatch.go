package accessor

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/tansive/hecate/internal/common/httpclient"
)

// dispatch sends the single GET for ep. Only a 200 counts as success.
func (a *Accessor) dispatch(ctx context.Context, ep Endpoint) (Payload, error) {
	resp, err := a.transport.Do(ctx, httpclient.RequestOptions{
		Method: http.MethodGet,
		Path:   ep.Path,
	})
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		log.Debug().Str("endpoint", ep.Name).Int("status", resp.StatusCode).Msg("unexpected status")
		return nil, &UnexpectedStatusError{
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
		}
	}
	return payloadFromBody(resp.Body), nil
}
