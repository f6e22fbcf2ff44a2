package ledgerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/config"
)

const (
	balancePath     = "/balance"
	chainPath       = "/chain"
	stakingInfoPath = "/staking/info"
	transactionPath = "/transaction"
)

type LedgerClient struct {
	httpClient *http.Client
	cfg        *config.LedgerConfig
}

func NewLedgerClient(cfg *config.LedgerConfig) *LedgerClient {
	return &LedgerClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

func (c *LedgerClient) GetBalance(ctx context.Context, address string) (float64, error) {
	type balanceResponse struct {
		Address string  `json:"address"`
		Balance float64 `json:"balance"`
	}

	callForBalance := func() (*balanceResponse, error) {
		path := balancePath + "/" + url.PathEscape(address)
		return sendRequest[balanceResponse](ctx, c, http.MethodGet, path, nil)
	}

	resp, err := clientCallWithRetry(ctx, callForBalance, c.cfg)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance for %q: %w", address, err)
	}
	return resp.Balance, nil
}

func (c *LedgerClient) ListTransactions(ctx context.Context) ([]ChainTransaction, error) {
	callForChain := func() (*[]chainBlock, error) {
		return sendRequest[[]chainBlock](ctx, c, http.MethodGet, chainPath, nil)
	}

	blocks, err := clientCallWithRetry(ctx, callForChain, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain: %w", err)
	}

	txs := make([]ChainTransaction, 0, len(*blocks))
	for _, block := range *blocks {
		tx, ok := c.transactionFromBlock(ctx, block)
		if ok {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

// transactionFromBlock converts one chain block into a ledger transaction.
// Blocks carrying no transaction (genesis) and payloads too damaged to
// identify both parties are skipped; a partially decoded payload whose
// recovered fields still name the parties is kept.
func (c *LedgerClient) transactionFromBlock(ctx context.Context, block chainBlock) (ChainTransaction, bool) {
	if block.Data == "" || block.Data == "Genesis Block" {
		return ChainTransaction{}, false
	}

	payload, err := parseBlockPayload(block.Data)
	if err != nil {
		var partial *PartialDecodeError
		if !errors.As(err, &partial) {
			log.Ctx(ctx).Warn().Err(err).Int64("block", block.Index).
				Msg("skipping undecodable block payload")
			return ChainTransaction{}, false
		}
		log.Ctx(ctx).Warn().
			Int64("block", block.Index).
			Strs("recovered_fields", partial.Recovered).
			Msg("salvaged fields from malformed block payload")
	}

	tx := ChainTransaction{
		Hash:        payload.Hash,
		Amount:      payload.Amount,
		Timestamp:   payload.Timestamp,
		BlockHeight: block.Index,
		Fee:         payload.Fee,
		GasUsed:     payload.GasUsed,
	}

	switch payload.Type {
	case payloadTypeTransaction:
		tx.From = payload.Sender
		tx.To = payload.Recipient
	case payloadTypeMiningReward:
		tx.From = "coinbase"
		tx.To = payload.Miner
		tx.Amount = payload.Reward
	default:
		return ChainTransaction{}, false
	}

	if tx.From == "" || tx.To == "" {
		return ChainTransaction{}, false
	}

	// older nodes don't embed a per-transaction hash; the enclosing block
	// hash is unique per settled transaction and serves as the identity
	if tx.Hash == "" {
		tx.Hash = block.Hash
	}
	if tx.Hash == "" {
		return ChainTransaction{}, false
	}
	if tx.Timestamp == 0 {
		tx.Timestamp = block.Timestamp
	}

	return tx, true
}

func (c *LedgerClient) GetStakingSnapshot(ctx context.Context, address string) (*StakingSnapshot, error) {
	callForSnapshot := func() (*StakingSnapshot, error) {
		path := stakingInfoPath + "/" + url.PathEscape(address)
		return sendRequest[StakingSnapshot](ctx, c, http.MethodGet, path, nil)
	}

	snapshot, err := clientCallWithRetry(ctx, callForSnapshot, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get staking snapshot for %q: %w", address, err)
	}
	return snapshot, nil
}

func (c *LedgerClient) SubmitTransaction(ctx context.Context, from, to string, amount float64) (*SubmitResult, error) {
	body := map[string]any{
		"sender":    from,
		"recipient": to,
		"amount":    amount,
	}

	callForSubmit := func() (*SubmitResult, error) {
		return sendRequest[SubmitResult](ctx, c, http.MethodPost, transactionPath, body)
	}

	result, err := clientCallWithRetry(ctx, callForSubmit, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to submit transaction: %w", err)
	}
	if result.Hash == "" {
		return nil, fmt.Errorf("ledger accepted transaction but returned no hash")
	}
	return result, nil
}

func sendRequest[T any](ctx context.Context, c *LedgerClient, method, path string, body any) (*T, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("ledger node returned status %d: %s", resp.StatusCode, raw)
	}

	var decoded T
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode ledger response: %w", err)
	}
	return &decoded, nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[*T],
	cfg *config.LedgerConfig,
) (*T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("failed to call the ledger node, retrying")
		}))
	if err != nil {
		return nil, err
	}
	return result, nil
}
