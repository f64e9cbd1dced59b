package chat

// Messages shown to the user.
const (
	Greeting       = "Hi! Ask me anything about the college and I'll do my best to help."
	GenericFailure = "Sorry, something went wrong. Please try again."
)
