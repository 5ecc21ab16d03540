package breakdown

import "context"

type UseCase interface {
	// Generate asks the LLM backend for at most input.Count subtask texts.
	// Exactly-Count is best effort: the backend may return fewer. Order is
	// whatever the backend emitted; no reordering happens here.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
