package hub

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nerrad567/ha-entity-renamer/internal/infrastructure/config"
	"github.com/nerrad567/ha-entity-renamer/internal/infrastructure/logging"
)

// defaultListTimeout bounds the REST listing call. The control channel
// has no timeout: each update blocks until the hub answers.
const defaultListTimeout = 30 * time.Second

// Client talks to a single Home Assistant hub.
//
// It owns the REST listing call and the WebSocket control channel used
// to apply renames. The client holds no connection between calls;
// ApplyPlan opens and closes the control channel within one invocation.
//
// Thread Safety:
//   - ListEntities is safe for concurrent use.
//   - ApplyPlan must not be called concurrently: the control channel
//     is a strictly sequential request/response protocol.
type Client struct {
	cfg        config.HubConfig
	httpClient *http.Client
	dialer     *websocket.Dialer
	logger     *logging.Logger
}

// NewClient creates a hub client from the given configuration.
//
// Parameters:
//   - cfg: Hub connection settings (host, token, TLS)
//   - logger: Logger for request/frame diagnostics
//
// Returns:
//   - *Client: Client ready for use
func NewClient(cfg config.HubConfig, logger *logging.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: defaultListTimeout,
		},
		dialer: websocket.DefaultDialer,
		logger: logger,
	}
}
