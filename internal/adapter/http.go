package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/utils"
	"github.com/MKhiriev/go-light-wallet/models"
)

const (
	latestBlockPath = "/api/v1/blocks/latest"
	serverInfoPath  = "/api/v1/info"
	blockRangePath  = "/api/v1/blocks"
	mempoolPath     = "/api/v1/mempool"

	defaultRequestTimeout = 30 * time.Second
)

type httpChainAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPChainAdapter returns a [ChainAdapter] talking JSON over HTTP to
// cfg.ServerURI.
func NewHTTPChainAdapter(cfg config.WalletConfig, log *logger.Logger) (ChainAdapter, error) {
	if cfg.ServerURI == "" {
		return nil, fmt.Errorf("%w: empty server uri", ErrBadRequest)
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &httpChainAdapter{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.ServerURI, "/"), timeout),
		logger: log.WithComponent("adapter"),
	}, nil
}

func (h *httpChainAdapter) LatestBlockHeight(ctx context.Context) (models.LatestBlock, error) {
	var block models.LatestBlock
	if err := h.get(ctx, "httpChainAdapter.LatestBlockHeight", latestBlockPath, nil, &block); err != nil {
		return models.LatestBlock{}, err
	}
	return block, nil
}

func (h *httpChainAdapter) ServerInfo(ctx context.Context) (models.ServerInfo, error) {
	var info models.ServerInfo
	if err := h.get(ctx, "httpChainAdapter.ServerInfo", serverInfoPath, nil, &info); err != nil {
		return models.ServerInfo{}, err
	}
	return info, nil
}

func (h *httpChainAdapter) BlockRange(ctx context.Context, start, end uint64) ([]models.CompactBlock, error) {
	if start > end {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidRange, start, end)
	}

	params := map[string]string{
		"start": strconv.FormatUint(start, 10),
		"end":   strconv.FormatUint(end, 10),
	}

	var blocks []models.CompactBlock
	if err := h.get(ctx, "httpChainAdapter.BlockRange", blockRangePath, params, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (h *httpChainAdapter) Mempool(ctx context.Context) ([]models.CompactTx, error) {
	var txs []models.CompactTx
	if err := h.get(ctx, "httpChainAdapter.Mempool", mempoolPath, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (h *httpChainAdapter) get(ctx context.Context, fn, path string, params map[string]string, out any) error {
	req := h.client.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		h.logger.Err(err).Str("func", fn).Str("path", path).Msg("request to chain-data server failed")
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", fn).Int("status", resp.StatusCode()).Msg("chain-data server returned error")
		return err
	}

	return decodeBody(resp, out)
}

func decodeBody(resp *resty.Response, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}
