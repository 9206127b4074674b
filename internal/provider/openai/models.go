package openai

// supportedModels lists the chat models the adapter routes for.
var supportedModels = []string{
	"gpt-4o",
	"gpt-4o-mini",
	"gpt-4-turbo",
	"gpt-4",
	"gpt-3.5-turbo",
}
