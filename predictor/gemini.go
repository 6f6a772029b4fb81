package predictor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"google.golang.org/genai"
)

// DefaultGeminiModel is used when a Gemini predictor does not name a model.
const DefaultGeminiModel = "gemini-2.5-flash"

// Gemini asks a Gemini model for the single most likely debit/credit pair.
// The model is instructed to answer with a bare JSON object; the two account
// fields are extracted by jsonpath so extra fields in the answer are ignored.
type Gemini struct {
	Client *genai.Client
	// Model overrides DefaultGeminiModel.
	Model string
	// Accounts is the chart of account identifiers the model may pick from.
	Accounts []string
}

// NewGemini creates a predictor over an existing genai client.
func NewGemini(client *genai.Client, accounts []string) *Gemini {
	return &Gemini{Client: client, Accounts: accounts}
}

const geminiInstruction = `You are a bookkeeping assistant. Given a transaction, name the single most
likely debit account and credit account, chosen only from the provided list.
Answer with a bare JSON object of the form {"debit": "...", "credit": "..."}
and nothing else.`

// Predict implements PairwisePredictor.
func (g *Gemini) Predict(ctx context.Context, tx Transaction) (Pair, error) {
	model := g.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	prompt := fmt.Sprintf("Accounts: %s\nTransaction: %s\nAmount (minor units): %d %s",
		strings.Join(g.Accounts, ", "), tx.Description, tx.Amount, tx.Currency)

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(geminiInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	resp, err := g.Client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return Pair{}, fmt.Errorf("gemini prediction for %q: %w", tx.ID, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Pair{}, fmt.Errorf("gemini prediction for %q: empty response", tx.ID)
	}
	return parsePair(resp.Candidates[0].Content.Parts[0].Text)
}

// parsePair extracts the account pair from the model's JSON answer.
func parsePair(text string) (Pair, error) {
	var jobj any
	if err := json.Unmarshal([]byte(text), &jobj); err != nil {
		return Pair{}, fmt.Errorf("response is not valid json %q: %w", text, err)
	}
	var pair Pair
	for _, field := range []struct {
		path string
		dst  *string
	}{
		{"$.debit", &pair.Debit},
		{"$.credit", &pair.Credit},
	} {
		jval, err := jsonpath.Get(field.path, jobj)
		if err != nil {
			return Pair{}, fmt.Errorf("response %q misses %s: %w", text, field.path, err)
		}
		// jsonpath is never clear about whether it returns a list of one
		// answer or a single answer: keep the first one if any.
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		s, ok := jval.(string)
		if !ok || s == "" {
			return Pair{}, fmt.Errorf("response %q: %s is not a non-empty string", text, field.path)
		}
		*field.dst = s
	}
	return pair, nil
}
