package usecase

// Intent is a recognized category of user request handled by a dedicated rule.
type Intent string

const (
	IntentGreeting        Intent = "GREETING"
	IntentNameCapture     Intent = "NAME_CAPTURE"
	IntentCategoryListing Intent = "CATEGORY_LISTING"
	IntentSkillLookup     Intent = "SKILL_LOOKUP"
	IntentBackendFallback Intent = "BACKEND_FALLBACK"
)

// Greeting matches on exact equality, not containment, so sentences that
// merely contain "hi" don't trigger it.
var greetingTokens = map[string]struct{}{
	"hi":        {},
	"hii":       {},
	"hello":     {},
	"hey":       {},
	"heya":      {},
	"yo":        {},
	"greetings": {},
}

// Name-capture triggers, tried in order; a trigger yielding an empty name
// passes control to the next trigger, not the next intent.
var nameTriggers = []string{"my name is", "i am", "call me"}

// Category-listing triggers, matched by containment.
var listTriggers = []string{"career options", "list careers", "show me options", "what can you do"}

// Reply templates
const (
	ReplyNameCapture = "It's a pleasure to meet you, %s! How can I help you explore your career path today?"

	ReplyCategoriesHeader = "Of course! I have information on these career categories:\n\n"
	ReplyCategoriesFooter = "You can ask for details about any specific career!"

	// ReplyBackendUnavailable is returned when no API key was configured.
	ReplyBackendUnavailable = "I'm sorry, my advanced AI features are unavailable. Please ensure the API key is configured correctly."

	// ReplyBackendTrouble is returned when the remote call fails. No retry.
	ReplyBackendTrouble = "I'm having a little trouble connecting to my brain right now."

	// ReplyUnsure terminates the rule list if nothing else produced a reply.
	ReplyUnsure = "I'm not sure how to answer that. Could you ask in a different way?"
)

// Persona instructions issued to the backend once per session, paired with a
// canned acknowledgement so the model treats them as settled context.
const (
	personaInstructions = `You are "CareerBot", a friendly, encouraging, and knowledgeable AI career advisor.

Your primary functions are:
1. Provide detailed information about specific careers from a knowledge base.
2. Engage in conversational chat, answer follow-up questions, and offer general career advice.

Key instructions:
- Remember the context: pay close attention to the conversation history. If a user asks a follow-up question like "what is the salary?" or "what is the path for that?", assume they are asking about the career that was just discussed.
- Remember names: if a user tells you their name, remember it and use it in your responses to be more personal.
- Handle ambiguity: if you are unsure what a user is asking, ask a clarifying question instead of saying "I don't know". For example, if they ask for "the best career", ask "What are your interests so I can recommend the best career for you?"`

	personaAck = "Understood! I'm CareerBot, ready to help you explore your career options. What's on your mind?"
)
