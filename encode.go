package ledgerline

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// This file contains the JSONL contract with the outside world: one request
// per line on the way in, one result per line on the way out. Upstream
// scoring and downstream persistence only ever see these two shapes.

// jrequest is the wire form of a DecodeRequest.
type jrequest struct {
	ID               string              `json:"id,omitempty"`
	Description      string              `json:"description,omitempty"`
	Total            int64               `json:"total"`
	Currency         string              `json:"currency,omitempty"`
	Debits           []ScoredCandidate   `json:"debits"`
	Credits          []ScoredCandidate   `json:"credits"`
	PredictedKDebit  int                 `json:"predicted_k_debit,omitempty"`
	PredictedKCredit int                 `json:"predicted_k_credit,omitempty"`
	MaxKPerSide      int                 `json:"max_k_per_side,omitempty"`
	ThresholdDebit   float64             `json:"threshold_debit,omitempty"`
	ThresholdCredit  float64             `json:"threshold_credit,omitempty"`
	Forced           []AccountID         `json:"forced,omitempty"`
	Blocked          []AccountID         `json:"blocked,omitempty"`
	External         *ExternalPrediction `json:"external,omitempty"`
	Strategy         string              `json:"strategy,omitempty"`
}

// DefaultMaxKPerSide applies to requests that do not bound their line count.
const DefaultMaxKPerSide = 4

// DecodeRequests reads a JSONL stream of decode requests. Requests without an
// id are assigned a fresh uuid so batch results stay addressable.
func DecodeRequests(r io.Reader) ([]DecodeRequest, error) {
	var reqs []DecodeRequest
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue // Skip empty lines
		}
		var jr jrequest
		if err := json.Unmarshal(raw, &jr); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		req, err := jr.request()
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		reqs = append(reqs, req)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return reqs, nil
}

// request converts the wire form, applying defaults.
func (jr jrequest) request() (DecodeRequest, error) {
	strategy, err := ParseStrategyName(jr.Strategy)
	if err != nil {
		return DecodeRequest{}, err
	}
	id := jr.ID
	if id == "" {
		id = uuid.NewString()
	}
	maxK := jr.MaxKPerSide
	if maxK == 0 {
		maxK = DefaultMaxKPerSide
	}
	return DecodeRequest{
		ID:               id,
		Description:      jr.Description,
		Total:            jr.Total,
		Currency:         jr.Currency,
		Debits:           jr.Debits,
		Credits:          jr.Credits,
		PredictedKDebit:  jr.PredictedKDebit,
		PredictedKCredit: jr.PredictedKCredit,
		MaxKPerSide:      maxK,
		ThresholdDebit:   jr.ThresholdDebit,
		ThresholdCredit:  jr.ThresholdCredit,
		Forced:           jr.Forced,
		Blocked:          jr.Blocked,
		External:         jr.External,
		Strategy:         strategy,
	}, nil
}

// EncodeRequest writes a request in canonical JSONL form.
func EncodeRequest(w io.Writer, req DecodeRequest) error {
	jr := jrequest{
		ID:               req.ID,
		Description:      req.Description,
		Total:            req.Total,
		Currency:         req.Currency,
		Debits:           req.Debits,
		Credits:          req.Credits,
		PredictedKDebit:  req.PredictedKDebit,
		PredictedKCredit: req.PredictedKCredit,
		MaxKPerSide:      req.MaxKPerSide,
		ThresholdDebit:   req.ThresholdDebit,
		ThresholdCredit:  req.ThresholdCredit,
		Forced:           req.Forced,
		Blocked:          req.Blocked,
		External:         req.External,
		Strategy:         string(req.Strategy),
	}
	data, err := json.Marshal(jr)
	if err != nil {
		return fmt.Errorf("failed to marshal request %q: %w", req.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write request %q: %w", req.ID, err)
	}
	return nil
}

// EncodeResult writes one batch result as a JSONL line. Field order is fixed
// so identical decisions encode to identical bytes.
func EncodeResult(w io.Writer, res BatchResult) error {
	var jw jsonObjectWriter
	jw.Append("id", res.ID)
	if res.Err != nil {
		jw.Append("error", res.Err.Error())
	} else {
		jw.Append("decoder", res.Decision.Debug.DecoderUsed)
		jw.Append("lines", res.Decision.Primary)
		jw.Optional("alternates", res.Decision.Alternates)
		jw.Append("debit_scores", res.Decision.Debug.DebitScores)
		jw.Append("credit_scores", res.Decision.Debug.CreditScores)
	}
	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal result %q: %w", res.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write result %q: %w", res.ID, err)
	}
	return nil
}

// EncodeResults writes a whole batch, one line per result, in batch order.
func EncodeResults(w io.Writer, results []BatchResult) error {
	for _, res := range results {
		if err := EncodeResult(w, res); err != nil {
			return err
		}
	}
	return nil
}
