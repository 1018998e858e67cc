package llm

import (
	"fmt"
	"strings"

	"github.com/Veraticus/po-classifier/internal/model"
)

const systemPrompt = "You are a procurement category classifier. " +
	"Assign the purchase order line item to a three-level category taxonomy: " +
	"L1 is the top-level category, L2 the sub-category and L3 the leaf category. " +
	"You MUST respond with ONLY a valid JSON object with the keys \"L1\", \"L2\" and \"L3\". " +
	"Do not include any explanatory text, markdown formatting, or commentary before or after the JSON."

// BuildPrompt renders the user prompt for one request. The supplier line is
// left out when no supplier was given.
func BuildPrompt(req model.ClassificationRequest) string {
	var b strings.Builder

	b.WriteString("Classify the following purchase order line item.\n\n")
	fmt.Fprintf(&b, "PO description: %s\n", strings.TrimSpace(req.Description))
	if req.HasSupplier() {
		fmt.Fprintf(&b, "Supplier: %s\n", strings.TrimSpace(req.Supplier))
	}
	b.WriteString("\nRespond with: {\"L1\": \"...\", \"L2\": \"...\", \"L3\": \"...\"}")

	return b.String()
}
