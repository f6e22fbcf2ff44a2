package ledgerclient

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ChainTransaction is one settled entry of the ledger's global transaction
// set, as reconstructed from the polled chain.
type ChainTransaction struct {
	Hash        string
	From        string
	To          string
	Amount      float64
	Timestamp   int64
	BlockHeight int64
	Fee         float64
	GasUsed     int64
}

// StakingSnapshot is the ledger's staking view of a single address.
type StakingSnapshot struct {
	TotalStaked  float64 `json:"total_staked"`
	TotalRewards float64 `json:"total_rewards"`
	Apy          float64 `json:"apy"`
	Since        int64   `json:"since"`
}

// SubmitResult acknowledges a transaction accepted by the ledger node.
type SubmitResult struct {
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
}

// chainBlock mirrors one entry of the node's GET /chain response. The block
// payload (a transaction, a mining reward, or the genesis marker) is a JSON
// document embedded as a string in Data.
type chainBlock struct {
	Index     int64  `json:"index"`
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
	Data      string `json:"data"`
}

// blockPayload is the embedded document carried by a block. Transactions use
// sender/recipient/amount, mining rewards use miner/reward.
type blockPayload struct {
	Type      string  `json:"type"`
	Hash      string  `json:"hash"`
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Miner     string  `json:"miner"`
	Amount    float64 `json:"amount"`
	Reward    float64 `json:"reward"`
	Timestamp int64   `json:"timestamp"`
	Fee       float64 `json:"fee"`
	GasUsed   int64   `json:"gas_used"`
}

const (
	payloadTypeTransaction  = "transaction"
	payloadTypeMiningReward = "mining_reward"
)

// PartialDecodeError reports a malformed block payload from which some
// fields were still recovered. Callers decide whether the recovered subset
// is usable; the error names exactly which fields survived.
type PartialDecodeError struct {
	Recovered []string
	Err       error
}

func (e *PartialDecodeError) Error() string {
	return fmt.Sprintf("malformed block payload (recovered fields: %s): %v",
		strings.Join(e.Recovered, ","), e.Err)
}

func (e *PartialDecodeError) Unwrap() error {
	return e.Err
}

// parseBlockPayload decodes a block's embedded document. On malformed input
// it salvages whatever well-formed top-level fields precede the syntax error
// and returns them together with a PartialDecodeError, never guessing via
// string matching.
func parseBlockPayload(data string) (*blockPayload, error) {
	var payload blockPayload
	err := json.Unmarshal([]byte(data), &payload)
	if err == nil {
		return &payload, nil
	}

	recovered, salvageErr := salvagePayloadFields(data, &payload)
	if salvageErr == nil {
		salvageErr = err
	}
	return &payload, &PartialDecodeError{
		Recovered: recovered,
		Err:       salvageErr,
	}
}

// salvagePayloadFields walks the token stream of a malformed JSON object and
// copies every complete key/primitive-value pair into payload, stopping at
// the first syntax error. Nested values are skipped, not guessed at.
func salvagePayloadFields(data string, payload *blockPayload) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	// opening brace
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("payload is not a JSON object")
	}

	var recovered []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return recovered, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return recovered, fmt.Errorf("unexpected token %v in place of object key", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return recovered, err
		}
		if delim, ok := valTok.(json.Delim); ok {
			// nested array/object: consume it wholesale
			if err := skipNested(dec, delim); err != nil {
				return recovered, err
			}
			continue
		}

		if assignPayloadField(payload, key, valTok) {
			recovered = append(recovered, key)
		}
	}

	return recovered, nil
}

func skipNested(dec *json.Decoder, open json.Delim) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

func assignPayloadField(payload *blockPayload, key string, val any) bool {
	switch key {
	case "type":
		s, ok := val.(string)
		if ok {
			payload.Type = s
		}
		return ok
	case "hash":
		s, ok := val.(string)
		if ok {
			payload.Hash = s
		}
		return ok
	case "sender":
		s, ok := val.(string)
		if ok {
			payload.Sender = s
		}
		return ok
	case "recipient":
		s, ok := val.(string)
		if ok {
			payload.Recipient = s
		}
		return ok
	case "miner":
		s, ok := val.(string)
		if ok {
			payload.Miner = s
		}
		return ok
	case "amount":
		return assignNumber(val, &payload.Amount)
	case "reward":
		return assignNumber(val, &payload.Reward)
	case "fee":
		return assignNumber(val, &payload.Fee)
	case "timestamp":
		var f float64
		if !assignNumber(val, &f) {
			return false
		}
		payload.Timestamp = int64(f)
		return true
	case "gas_used":
		var f float64
		if !assignNumber(val, &f) {
			return false
		}
		payload.GasUsed = int64(f)
		return true
	default:
		return false
	}
}

func assignNumber(val any, dst *float64) bool {
	num, ok := val.(json.Number)
	if !ok {
		return false
	}
	f, err := num.Float64()
	if err != nil {
		return false
	}
	*dst = f
	return true
}
