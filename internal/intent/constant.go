package intent

// Log prefixes
const (
	LogPrefixClassify      = "internal.intent.Classify"
	LogPrefixModelClassify = "internal.intent.ModelProvider.Classify"
)

// Provider names
const (
	ProviderModel = "model"
	ProviderRules = "rules"
)

// Model prompt and tool
const (
	PromptSystem = `You classify messages sent to an e-commerce shopping assistant.
Call set_intent exactly once with the single best intent:
- LIST_PRODUCTS: browse, search or filter products (extract query, category, minPrice, maxPrice when stated)
- ADD_TO_CART: add a product to the cart (extract productId and quantity when stated)
- GET_CART: view the cart
- PLACE_ORDER: place an order from the cart
- CHECKOUT: pay for an order (extract orderId when stated)
- GET_ORDER_STATUS: order status or tracking (extract orderId when stated)
- UNKNOWN: anything else
Prices are plain numbers in rupees. Omit fields that are not stated.`

	PromptContextProduct = "[Context: productId=%s]"
	PromptContextOrder   = "[Context: orderId=%s]"

	ToolSetIntent            = "set_intent"
	ToolSetIntentDescription = "Record the classified intent and any parameters extracted from the message."

	ModelMaxTokens = 256
)

// Log messages
const (
	LogMsgModelFailed   = "model classification failed, using rules: %v"
	LogMsgModelDeclined = "model declined, using rules"
	LogMsgClassified    = "classified as %s via %s"
)

// setIntentSchema is the JSON schema of the set_intent tool arguments.
func setIntentSchema() map[string]interface{} {
	intents := make([]interface{}, len(All))
	for i, in := range All {
		intents[i] = string(in)
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"intent":    map[string]interface{}{"type": "string", "enum": intents},
			"query":     map[string]interface{}{"type": "string", "description": "Search words for products"},
			"category":  map[string]interface{}{"type": "string", "description": "Product category name"},
			"minPrice":  map[string]interface{}{"type": "number"},
			"maxPrice":  map[string]interface{}{"type": "number"},
			"productId": map[string]interface{}{"type": "string"},
			"quantity":  map[string]interface{}{"type": "integer", "minimum": 1},
			"orderId":   map[string]interface{}{"type": "string"},
		},
		"required": []interface{}{"intent"},
	}
}
